// Package export writes generated batches to a destination and computes
// digests over what was written.
//
// A batch is rendered as one string per line, each terminated by "\n".
// Two exporters are provided:
//
//   - LocalExporter writes to a filesystem path, creating parent directories.
//     An empty path selects generated_strings.txt in the OS temp directory.
//   - S3Exporter uploads to an s3://bucket/key target through the AWS SDK.
//     Any S3-compatible service works when an endpoint is configured.
//
// # Usage
//
//	exp, err := export.NewLocalExporter("out/ids.txt")
//	if err != nil {
//	    return err
//	}
//	res, err := exp.Export(ctx, lines)
//
//	algs, unknown := export.ParseAlgorithms("md5,sha3_256")
//	sums, err := export.Digest(bytes.NewReader(export.Render(lines)), algs)
//	for _, s := range sums {
//	    fmt.Printf("%s: %s\n", strings.ToUpper(string(s.Algorithm)), s.Hex)
//	}
//
// ParseAlgorithms accepts "n" (md5, sha1, sha256, sha512), "a" (the same
// plus the four SHA-3 variants) or a comma separated list. Unknown names are
// returned separately so callers can warn and continue.
//
// # Errors
//
// S3 failures are classified into ErrBucketNotFound, ErrAccessDenied,
// ErrRequestTimeout, ErrServiceUnavailable, ErrOperationTimeout and
// ErrOperationCanceled. Local failures wrap ErrFailedToWriteFile or
// ErrFailedToCreateDirectory.
package export
