package cmd

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kozaktomas/color-season/internal/config"
	"github.com/kozaktomas/color-season/internal/storage"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

var uploadCmd = &cobra.Command{
	Use:   "upload <file> [file...]",
	Short: "Upload photos to the configured store",
	Long: `Upload one or more photos to the configured store (STORAGE_BACKEND)
and print the public URL of each.

Supported formats: jpg, jpeg, png, gif, webp, tiff, bmp

Example:
  color-season upload portrait.jpg
  STORAGE_BACKEND=s3 color-season upload a.jpg b.png`,
	Args: cobra.MinimumNArgs(1),
	RunE: runUpload,
}

func init() {
	rootCmd.AddCommand(uploadCmd)
}

// isImageFile checks if a file has a supported image extension
func isImageFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	supported := map[string]bool{
		".jpg":  true,
		".jpeg": true,
		".png":  true,
		".gif":  true,
		".webp": true,
		".tiff": true,
		".tif":  true,
		".bmp":  true,
	}
	return supported[ext]
}

// uploadFile stores a single file under a timestamped key.
func uploadFile(ctx context.Context, store storage.Store, path string) (storage.Object, error) {
	f, err := os.Open(path)
	if err != nil {
		return storage.Object{}, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return storage.Object{}, err
	}

	key := storage.ObjectKey(time.Now(), filepath.Base(path))
	return store.Put(ctx, key, f, info.Size(), mime.TypeByExtension(strings.ToLower(filepath.Ext(path))))
}

// uploadAll uploads files one by one, calling done after each file. It
// returns the objects that were stored and a message for each failure.
func uploadAll(ctx context.Context, store storage.Store, paths []string, done func()) ([]storage.Object, []string) {
	var (
		objects []storage.Object
		failed  []string
	)
	for _, path := range paths {
		obj, err := uploadFile(ctx, store, path)
		if err != nil {
			failed = append(failed, fmt.Sprintf("%s: %v", filepath.Base(path), err))
		} else {
			objects = append(objects, obj)
		}
		done()
	}
	return objects, failed
}

func runUpload(cmd *cobra.Command, args []string) error {
	var filePaths []string
	for _, path := range args {
		if !isImageFile(path) {
			return fmt.Errorf("%s is not a supported image file", path)
		}
		filePaths = append(filePaths, path)
	}

	cfg := config.Load()
	ctx := cmd.Context()

	store, err := storage.New(ctx, cfg.Storage)
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Uploading %d photo(s) to %s storage\n\n", len(filePaths), store.Name())

	uploadBar := progressbar.NewOptions(len(filePaths),
		progressbar.OptionSetWriter(cmd.ErrOrStderr()),
		progressbar.OptionSetDescription("Uploading"),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("files"),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionFullWidth(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "=",
			SaucerHead:    ">",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)

	objects, failed := uploadAll(ctx, store, filePaths, func() { uploadBar.Add(1) })
	fmt.Fprintln(cmd.ErrOrStderr())

	for _, msg := range failed {
		fmt.Fprintf(out, "Failed: %s\n", msg)
	}
	for _, obj := range objects {
		fmt.Fprintln(out, obj.URL)
	}

	if len(objects) == 0 {
		return fmt.Errorf("no files were uploaded successfully")
	}
	return nil
}
