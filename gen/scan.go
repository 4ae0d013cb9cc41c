package gen

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// scanWorkers is the number of directories rendered concurrently.
const scanWorkers = 10

// supported reports whether a file extension belongs to a decodable image
// format.
func supported(ext string) bool {
	switch strings.ToLower(ext) {
	case ".png", ".gif", ".jpg", ".jpeg", ".bmp", ".tif", ".tiff", ".webp":
		return true
	}
	return false
}

func (g *Generator) findDirectories(ctx context.Context, base string) (<-chan string, <-chan error, error) {
	out := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(out)
		defer close(errc)
		errc <- filepath.Walk(base, func(dir string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			// Ignore any hidden files or directories, otherwise we end up
			// fighting with things like Spotlight, etc. The base itself is
			// exempt so a hidden tree can still be scanned explicitly.
			if info.Name()[0] == '.' && dir != base {
				if info.Mode().IsDir() {
					return filepath.SkipDir
				}
				return nil
			}

			if !info.Mode().IsDir() {
				return nil
			}

			select {
			case out <- dir:
			case <-ctx.Done():
				return errors.New("walk cancelled")
			}

			return nil
		})
	}()
	return out, errc, nil
}

func (g *Generator) directoryWorker(ctx context.Context, in <-chan string, opts Options) (<-chan error, error) {
	errc := make(chan error, 1)
	go func() {
		defer close(errc)
		for dir := range in {
			select {
			case <-ctx.Done():
				errc <- ctx.Err()
				return
			default:
			}
			if err := g.generateDirectory(dir, opts); err != nil {
				errc <- err
				return
			}
		}
	}()
	return errc, nil
}

// generateDirectory renders every image directly inside dir and, if there
// were any, writes the generated file next to them.
func (g *Generator) generateDirectory(dir string, opts Options) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	var assets []*Asset
	for _, entry := range entries {
		if !entry.Type().IsRegular() || entry.Name()[0] == '.' || !supported(filepath.Ext(entry.Name())) {
			continue
		}

		a, err := g.Generate(filepath.Join(dir, entry.Name()), opts)
		if err != nil {
			return err
		}
		// Record the bare file name so the generated file reads the same
		// wherever the tree is checked out.
		a.Source = entry.Name()
		assets = append(assets, a)
	}

	if len(assets) == 0 {
		return nil
	}

	pkg := opts.Package
	if pkg == "" {
		if pkg, err = PackageName(filepath.Base(dir)); err != nil {
			return err
		}
	}

	out := opts.Out
	if out == "" {
		out = DefaultOut
	}
	path := filepath.Join(dir, out)

	// Render fully before touching the file, so a bad asset set cannot
	// truncate the output of an earlier run.
	b := new(bytes.Buffer)
	if err := File(b, pkg, assets); err != nil {
		return err
	}
	if err := os.WriteFile(path, b.Bytes(), 0o644); err != nil {
		return err
	}

	g.logger.Printf("%s: wrote %d stamps", path, len(assets))

	return nil
}

func waitForPipeline(errs ...<-chan error) error {
	errc := mergeErrors(errs...)
	for err := range errc {
		if err != nil {
			return err
		}
	}
	return nil
}

func mergeErrors(cs ...<-chan error) <-chan error {
	var wg sync.WaitGroup
	out := make(chan error, len(cs))
	wg.Add(len(cs))
	for _, c := range cs {
		go func(c <-chan error) {
			for n := range c {
				out <- n
			}
			wg.Done()
		}(c)
	}
	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}

// Scan walks the tree rooted at path and emits one generated file into
// each directory that directly contains images, named after the directory
// unless opts says otherwise. Directories without images are left alone.
func (g *Generator) Scan(path string, opts Options) error {
	dir, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	ctx, cancelFunc := context.WithCancel(context.Background())
	defer cancelFunc()

	var errcList []<-chan error

	dirs, errc, err := g.findDirectories(ctx, dir)
	if err != nil {
		return err
	}
	errcList = append(errcList, errc)

	for i := 0; i < scanWorkers; i++ {
		errc, err := g.directoryWorker(ctx, dirs, opts)
		if err != nil {
			return err
		}
		errcList = append(errcList, errc)
	}

	return waitForPipeline(errcList...)
}
