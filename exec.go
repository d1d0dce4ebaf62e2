package slider2d

import (
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/esimov/slider2d/utils"
	"github.com/pkg/errors"
	"golang.org/x/term"
)

// maxWorkers sets the maximum number of concurrently running workers.
const maxWorkers = 20

// Player replays event scripts against a freshly created controller.
type Player struct {
	Config Config
	Style  Style
	// Virtual renders the snapshots at the virtual extent, if one is configured.
	Virtual bool
}

// Ops describes the source and the destination of a replay.
type Ops struct {
	Src, Dst, PipeName string
	// Snapshot is the path of the image rendered after the replay. In directory
	// mode only its extension is used, the images are saved next to the traces.
	Snapshot string
	Workers  int

	remote *os.File
}

// result holds the relevant information about the replay of a script.
type result struct {
	path string
	err  error
}

// Play decodes the script from r, replays it on a new controller and writes
// the trace to w. It returns the controller in its final state.
func (p *Player) Play(r io.Reader, w io.Writer) (*Controller, error) {
	c, err := New(p.Config)
	if err != nil {
		return nil, err
	}
	events, err := ReadScript(r)
	if err != nil {
		return nil, err
	}
	frames, err := Replay(c, events)
	if err != nil {
		return nil, err
	}
	if err := WriteTrace(w, frames); err != nil {
		return nil, err
	}
	return c, nil
}

// Execute replays the scripts described by op.
// A directory source is walked recursively and its scripts are replayed concurrently.
func (p *Player) Execute(op *Ops) {
	var (
		fs  os.FileInfo
		err error
	)
	validExtensions := []string{".json"}

	// Check if source path is a local file or URL.
	if utils.IsValidUrl(op.Src) {
		src, err := utils.Download(op.Src)
		if src != nil {
			defer os.Remove(src.Name())
			defer src.Close()
		}
		if err != nil {
			log.Fatalf(
				utils.DecorateText("Failed to load the source script: %v", utils.ErrorMessage),
				utils.DecorateText(err.Error(), utils.DefaultMessage),
			)
		}
		fs, err = src.Stat()
		if err != nil {
			log.Fatalf(
				utils.DecorateText("Failed to load the source script: %v", utils.ErrorMessage),
				utils.DecorateText(err.Error(), utils.DefaultMessage),
			)
		}
		op.remote = src
	} else {
		// Check if the source is a pipe name or a regular file.
		if op.Src == op.PipeName {
			fs, err = os.Stdin.Stat()
		} else {
			fs, err = os.Stat(op.Src)
		}
		if err != nil {
			log.Fatalf(
				utils.DecorateText("Failed to load the source script: %v", utils.ErrorMessage),
				utils.DecorateText(err.Error(), utils.DefaultMessage),
			)
		}
	}

	// Capture CTRL-C signal and leave with a status message.
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-signalChan
		fmt.Fprintln(os.Stderr, utils.DecorateText("\nreplay aborted by the user...", utils.ErrorMessage))
		os.Exit(1)
	}()

	now := time.Now()

	switch mode := fs.Mode(); {
	case mode.IsDir():
		var wg sync.WaitGroup
		// Read destination file or directory.
		_, err := os.Stat(op.Dst)
		if err != nil {
			err = os.Mkdir(op.Dst, 0755)
			if err != nil {
				log.Fatalf(
					utils.DecorateText("Unable to get dir stats: %v\n", utils.ErrorMessage),
					utils.DecorateText(err.Error(), utils.DefaultMessage),
				)
			}
		}

		// Limit the concurrently running workers to maxWorkers.
		if op.Workers <= 0 || op.Workers > maxWorkers {
			op.Workers = runtime.NumCPU()
		}

		// Replay recursively the scripts from the specified directory concurrently.
		ch := make(chan result)
		done := make(chan interface{})
		defer close(done)

		paths, errc := walkDir(done, op.Src, validExtensions)

		wg.Add(op.Workers)
		for i := 0; i < op.Workers; i++ {
			go func() {
				defer wg.Done()
				op.consumer(p, op.Dst, ch, done, paths)
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
			op.printOpStatus(res.path, res.err)
		}

		if err = <-errc; err != nil {
			fmt.Fprint(os.Stderr, utils.DecorateText(err.Error(), utils.ErrorMessage))
		}

	case mode.IsRegular() || mode&os.ModeNamedPipe != 0: // check for regular files or pipe names
		ext := filepath.Ext(op.Dst)
		if !isValidExtension(ext, validExtensions) && op.Dst != op.PipeName {
			log.Fatalf(utils.DecorateText(fmt.Sprintf("%v file type not supported", ext), utils.ErrorMessage))
		}

		err = op.process(p, op.Src, op.Dst, op.Snapshot)
		op.printOpStatus(op.Dst, err)
	}
	if err == nil {
		fmt.Fprintf(os.Stderr, "\nExecution time: %s\n", utils.DecorateText(utils.FormatTime(time.Since(now)), utils.SuccessMessage))
	}
}

// consumer reads the path names from the paths channel and replays the scripts.
func (op *Ops) consumer(
	p *Player,
	dest string,
	res chan<- result,
	done <-chan interface{},
	paths <-chan string,
) {
	for src := range paths {
		dst := filepath.Join(dest, filepath.Base(src))

		var snapshot string
		if op.Snapshot != "" {
			snapshot = strings.TrimSuffix(dst, filepath.Ext(dst)) + filepath.Ext(op.Snapshot)
		}
		err := op.process(p, src, dst, snapshot)

		select {
		case <-done:
			return
		case res <- result{
			path: src,
			err:  err,
		}:
		}
	}
}

// process replays the script found at in, writes the trace to out and,
// if requested, renders the final state to the snapshot path.
func (op *Ops) process(p *Player, in, out, snapshot string) (err error) {
	src, dst, err := op.pathToFile(in, out)
	if err != nil {
		return err
	}

	defer func() {
		if f, ok := src.(*os.File); ok && f != os.Stdin && f != op.remote {
			if err := f.Close(); err != nil {
				log.Printf("could not close the opened file: %v", err)
			}
		}
	}()

	defer func() {
		if f, ok := dst.(*os.File); ok && f != os.Stdout {
			if err := f.Close(); err != nil {
				log.Printf("could not close the opened file: %v", err)
			}
			// Remove the incomplete trace in case of an error.
			if err != nil {
				os.Remove(f.Name())
			}
		}
	}()

	c, err := p.Play(src, dst)
	if err != nil {
		return errors.Wrapf(err, "could not replay %s", filepath.Base(in))
	}

	if snapshot != "" {
		if err := SaveSnapshot(c, p.Style, snapshot, p.Virtual); err != nil {
			return errors.Wrap(err, "could not save the snapshot")
		}
	}
	return nil
}

// pathToFile converts the source and destination paths to readable and writable files.
func (op *Ops) pathToFile(in, out string) (io.Reader, io.Writer, error) {
	var (
		src io.Reader
		dst io.Writer
		err error
	)
	// Check if the source path is a local file or URL.
	if utils.IsValidUrl(in) {
		if op.remote == nil {
			return nil, nil, errors.New("the remote script has not been downloaded")
		}
		src = op.remote
	} else {
		// Check if the source is a pipe name or a regular file.
		if in == op.PipeName {
			if term.IsTerminal(int(os.Stdin.Fd())) {
				return nil, nil, errors.New("`-` should be used with a pipe for stdin")
			}
			src = os.Stdin
		} else {
			src, err = os.Open(in)
			if err != nil {
				return nil, nil, errors.Wrap(err, "unable to open the source file")
			}
		}
	}

	// Check if the destination is a pipe name or a regular file.
	if out == op.PipeName {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return nil, nil, errors.New("`-` should be used with a pipe for stdout")
		}
		dst = os.Stdout
	} else {
		dst, err = os.OpenFile(out, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
		if err != nil {
			return nil, nil, errors.Wrap(err, "unable to create the destination file")
		}
	}
	return src, dst, nil
}

// printOpStatus displays the relevant information about the replay.
func (op *Ops) printOpStatus(fname string, err error) {
	if err != nil {
		log.Fatalf(
			utils.DecorateText("\nError replaying the script: %s", utils.ErrorMessage),
			utils.DecorateText(fmt.Sprintf("\n\tReason: %v\n", err.Error()), utils.DefaultMessage),
		)
	} else {
		if fname != op.PipeName {
			fmt.Fprintf(os.Stderr, "%s %s %s\n",
				utils.DecorateText("⚡ SLIDER2D", utils.StatusMessage),
				utils.DecorateText("⇢ the trace has been saved as:", utils.DefaultMessage),
				utils.DecorateText(filepath.Base(fname), utils.SuccessMessage),
			)
		}
	}
}

// walkDir starts a new goroutine to walk the specified directory tree
// in recursive manner and sends the path of each regular file to a new channel.
// It finishes in case the done channel is getting closed.
func walkDir(
	done <-chan interface{},
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

			if isValidExtension(filepath.Ext(f.Name()), srcExts) {
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

// isValidExtension checks for the supported extensions.
func isValidExtension(ext string, extensions []string) bool {
	return utils.Contains(extensions, strings.ToLower(ext))
}
