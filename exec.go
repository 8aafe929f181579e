package lasertrace

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/esimov/lasertrace/utils"
	"golang.org/x/term"
)

var (
	// imgFile holds the file being accessed, be it normal file or pipe name.
	imgFile *os.File

	// Common file related variable
	fs os.FileInfo
)

// Source describes the input and output locations of one tracing run: a
// file, a directory, a URL or the pipe name for stdin/stdout.
type Source struct {
	Src, Dst, PipeName string
	Workers            int
}

// result holds the relevant information about the tracing process and the generated document.
type result struct {
	path string
	err  error
}

// Execute runs the tracing process over the source, which may be a single
// image, a directory traced concurrently or a piped stream.
func (p *Processor) Execute(src *Source) {
	var err error
	defaultMsg := fmt.Sprintf("%s %s",
		utils.DecorateText("◈ LASERTRACE", utils.StatusMessage),
		utils.DecorateText("⇢ tracing image (be patient, it may take a while)...", utils.DefaultMessage),
	)
	p.Spinner = utils.NewSpinner(defaultMsg, time.Millisecond*80)

	// Supported files
	validExtensions := []string{".jpg", ".png", ".jpeg", ".bmp", ".gif"}

	// Check if source path is a local image or URL.
	if utils.IsValidUrl(src.Src) {
		tmp, err := utils.DownloadImage(src.Src)
		if tmp != nil {
			defer os.Remove(tmp.Name())
		}

		if err != nil {
			log.Fatalf(
				utils.DecorateText("Failed to load the source image: %v", utils.ErrorMessage),
				utils.DecorateText(err.Error(), utils.DefaultMessage),
			)
		}
		fs, err = tmp.Stat()
		if err != nil {
			log.Fatalf(
				utils.DecorateText("Failed to load the source image: %v", utils.ErrorMessage),
				utils.DecorateText(err.Error(), utils.DefaultMessage),
			)
		}
		img, err := os.Open(tmp.Name())
		if err != nil {
			log.Fatalf(
				utils.DecorateText("Unable to open the temporary image file: %v", utils.ErrorMessage),
				utils.DecorateText(err.Error(), utils.DefaultMessage),
			)
		}

		imgFile = img
	} else {
		// Check if the source is a pipe name or a regular file.
		if src.Src == src.PipeName {
			fs, err = os.Stdin.Stat()
		} else {
			fs, err = os.Stat(src.Src)
		}
		if err != nil {
			log.Fatalf(
				utils.DecorateText("Failed to load the source image: %v", utils.ErrorMessage),
				utils.DecorateText(err.Error(), utils.DefaultMessage),
			)
		}
	}

	now := time.Now()

	switch mode := fs.Mode(); {
	case mode.IsDir():
		var wg sync.WaitGroup
		// Read destination file or directory.
		_, err := os.Stat(src.Dst)
		if err != nil {
			err = os.Mkdir(src.Dst, 0755)
			if err != nil {
				log.Fatalf(
					utils.DecorateText("Unable to get dir stats: %v\n", utils.ErrorMessage),
					utils.DecorateText(err.Error(), utils.DefaultMessage),
				)
			}
		}

		// Limit the concurrently running workers to the number of CPUs.
		if src.Workers <= 0 || src.Workers > runtime.NumCPU() {
			src.Workers = runtime.NumCPU()
		}

		// Process the image files from the specified directory concurrently.
		ch := make(chan result)
		done := make(chan any)
		defer close(done)

		paths, errc := walkDir(done, src.Src, validExtensions)

		wg.Add(src.Workers)
		for range src.Workers {
			go func() {
				defer wg.Done()
				src.consumer(p, src.Dst, ch, done, paths)
			}()
		}

		// Close the channel after the values are consumed.
		go func() {
			defer close(ch)
			wg.Wait()
		}()

		// Consume the channel values.
		for res := range ch {
			if res.err != nil {
				err = res.err
			}
			src.printOpStatus(res.path, err)
		}

		if err = <-errc; err != nil {
			fmt.Fprint(os.Stderr, utils.DecorateText(err.Error(), utils.ErrorMessage))
		}

	case mode.IsRegular() || mode&os.ModeNamedPipe != 0: // check for regular files or pipe names
		ext := filepath.Ext(src.Dst)
		if ext != ".svg" && src.Dst != src.PipeName {
			log.Fatalf(utils.DecorateText(fmt.Sprintf("%v file type not supported as destination, expected .svg", ext), utils.ErrorMessage))
		}

		err = src.process(p, src.Src, src.Dst)
		src.printOpStatus(src.Dst, err)
	}
	if err == nil {
		fmt.Fprintf(os.Stderr, "\nExecution time: %s\n", utils.DecorateText(
			utils.FormatTime(time.Since(now)), utils.SuccessMessage),
		)
	}
}

// consumer reads the path names from the paths channel and calls the tracing processor against the source image.
func (src *Source) consumer(
	p *Processor,
	dest string,
	res chan<- result,
	done <-chan any,
	paths <-chan string,
) {
	for in := range paths {
		base := filepath.Base(in)
		dst := filepath.Join(dest, strings.TrimSuffix(base, filepath.Ext(base))+".svg")
		err := src.process(p, in, dst)

		select {
		case <-done:
			return
		case res <- result{
			path: in,
			err:  err,
		}:
		}
	}
}

// process calls the tracer method over the source image and returns the error in case exists.
func (src *Source) process(p *Processor, in, out string) error {
	var (
		successMsg string
		errorMsg   string
	)
	// Start the progress indicator.
	p.Spinner.Start()

	successMsg = fmt.Sprintf("%s %s %s",
		utils.DecorateText("◈ LASERTRACE", utils.StatusMessage),
		utils.DecorateText("⇢", utils.DefaultMessage),
		utils.DecorateText("the image has been traced successfully ✔", utils.SuccessMessage),
	)

	errorMsg = fmt.Sprintf("%s %s %s",
		utils.DecorateText("◈ LASERTRACE", utils.StatusMessage),
		utils.DecorateText("tracing image failed...", utils.DefaultMessage),
		utils.DecorateText("✘", utils.ErrorMessage),
	)

	r, w, err := src.pathToFile(in, out)
	if err != nil {
		p.Spinner.StopMsg = errorMsg
		return err
	}

	// Capture CTRL-C signal and restores back the cursor visibility.
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-signalChan
		p.Spinner.RestoreCursor()
		if f, ok := w.(*os.File); ok && f != os.Stdout {
			os.Remove(f.Name())
		}
		os.Exit(1)
	}()

	defer func() {
		if f, ok := r.(*os.File); ok {
			if err := f.Close(); err != nil {
				log.Printf("could not close the opened file: %v", err)
			}
		}
	}()

	defer func() {
		if f, ok := w.(*os.File); ok {
			if err := f.Close(); err != nil {
				log.Printf("could not close the opened file: %v", err)
			}
		}
	}()

	err = p.Process(r, w)
	if err != nil {
		// remove the generated document in case of an error
		if f, ok := w.(*os.File); ok && f != os.Stdout {
			os.Remove(f.Name())
		}

		p.Spinner.StopMsg = errorMsg
		// Stop the progress indicator.
		p.Spinner.Stop()

		return err
	}
	p.Spinner.StopMsg = successMsg
	// Stop the progress indicator.
	p.Spinner.Stop()

	return nil
}

// pathToFile converts the source and destination paths to readable and writable files.
func (src *Source) pathToFile(in, out string) (io.Reader, io.Writer, error) {
	var (
		r   io.Reader
		w   io.Writer
		err error
	)
	// Check if the source path is a local image or URL.
	if utils.IsValidUrl(in) {
		r = imgFile
	} else {
		// Check if the source is a pipe name or a regular file.
		if in == src.PipeName {
			if term.IsTerminal(int(os.Stdin.Fd())) {
				return nil, nil, errors.New("`-` should be used with a pipe for stdin")
			}
			r = os.Stdin
		} else {
			r, err = os.Open(in)
			if err != nil {
				return nil, nil, fmt.Errorf("unable to open the source file: %v", err)
			}
		}
	}

	// Check if the destination is a pipe name or a regular file.
	if out == src.PipeName {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return nil, nil, errors.New("`-` should be used with a pipe for stdout")
		}
		w = os.Stdout
	} else {
		w, err = os.OpenFile(out, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("unable to create the destination file: %v", err)
		}
	}

	return r, w, nil
}

// printOpStatus displays the relevant information about the image tracing process.
func (src *Source) printOpStatus(fname string, err error) {
	if err != nil {
		log.Fatalf(
			utils.DecorateText("\nError tracing the image: %s", utils.ErrorMessage),
			utils.DecorateText(fmt.Sprintf("\n\tReason: %v\n", err.Error()), utils.DefaultMessage),
		)
	} else {
		if fname != src.PipeName {
			fmt.Fprintf(os.Stderr, "\nThe vector document has been saved as: %s %s\n\n",
				utils.DecorateText(filepath.Base(fname), utils.SuccessMessage),
				utils.DefaultColor,
			)
		}
	}
}

// walkDir starts a new goroutine to walk the specified directory tree
// in recursive manner and sends the path of each regular file with one of the
// given extensions to a new channel.
// It finishes in case the done channel is getting closed.
func walkDir(
	done <-chan any,
	src string,
	srcExts []string,
) (<-chan string, <-chan error) {
	pathChan := make(chan string)
	errChan := make(chan error, 1)

	go func() {
		// Close the paths channel after Walk returns.
		defer close(pathChan)

		errChan <- filepath.Walk(src, func(path string, f os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if !f.Mode().IsRegular() {
				return nil
			}

			// Get the file base name.
			fx := filepath.Ext(f.Name())
			if slices.Contains(srcExts, fx) {
				select {
				case <-done:
					return errors.New("directory walk cancelled")
				case pathChan <- path:
				}
			}
			return nil
		})
	}()
	return pathChan, errChan
}
