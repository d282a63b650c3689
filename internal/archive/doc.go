// Package archive packages generated projects into zip files and stores
// them for download.
//
// The web surface builds an archive after each generation so browser
// clients can fetch the whole project as a single file. The CLI does not
// archive; it writes straight to the output directory.
//
// # Storage Backends
//
// Backends implement the Store interface:
//
//   - DiskStore keeps archives under a local directory with a JSON
//     metadata sidecar per archive, and survives restarts by reading the
//     sidecars back.
//   - S3Store keeps archives in a bucket and hands out presigned download
//     URLs instead of streaming through the server.
//
// An archive stays downloadable until Cleanup removes it; the serve
// command runs Cleanup hourly against a configured TTL.
//
// # Usage
//
//	store, err := archive.NewDiskStore(dir)
//	if err != nil {
//	    return err
//	}
//
//	var buf bytes.Buffer
//	if err := archive.Build(&buf, projectPath); err != nil {
//	    return err
//	}
//	id, err := store.Save("demo-app", &buf)
package archive
