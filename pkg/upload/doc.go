// Package upload stages uploaded files between form submission and the
// code that consumes them.
//
// A file part bound to a fieldset.NewFile field is validated and saved
// into a Store while the form cleans; what the field hands back is an
// *upload.File carrying the staging ID. Once the whole form validates,
// the application claims the content:
//
//	store, _ := upload.NewDiskStore("/var/tmp/staged", 10<<20)
//
//	form := fieldset.New(
//	    fieldset.NewFile("attachment", &fieldset.FileOptions{Store: store}),
//	)
//
//	bound, _ := form.BindRequest(r)
//	if bound.Validate() {
//	    rec := bound.Value("attachment").(*upload.File)
//	    file, err := store.Claim(rec.ID)
//	    // file.Reader streams the content; Close deletes the staging copy.
//	}
//
// Claiming is destructive: a staged file is read once and gone. Files
// from submissions that never validate are left behind, so run
// Cleanup periodically to sweep them:
//
//	go func() {
//	    for range time.Tick(5 * time.Minute) {
//	        store.Cleanup(time.Hour)
//	    }
//	}()
//
// DiskStore keeps staged content in a local directory with JSON
// sidecar metadata. An S3-backed store is sketched in s3_example.go
// behind the s3store build tag.
package upload
