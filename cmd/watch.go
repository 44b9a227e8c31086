package cmd

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/bep/debounce"
	"github.com/fsnotify/fsnotify"
	"github.com/jsphweid/chordsheet/chord"
	"github.com/jsphweid/chordsheet/constants"
	"github.com/jsphweid/chordsheet/logging"
	"github.com/jsphweid/chordsheet/root"
	"github.com/jsphweid/chordsheet/util"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	watchFrom = root.C
	watchTo   = root.C
	watchOut  string
)

func init() {
	watchCmd.Flags().Var(&watchFrom, "from", "key the sheet is written in")
	watchCmd.Flags().Var(&watchTo, "to", "key to transpose to")
	watchCmd.Flags().StringVarP(&watchOut, "out", "o", "", "file to keep up to date")
	watchCmd.MarkFlagRequired("to")
	watchCmd.MarkFlagRequired("out")
	rootCmd.AddCommand(watchCmd)
}

var watchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Keeps a transposed copy of a sheet up to date",
	Long:  `Transposes a sheet into --out every time the sheet is saved.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt)
		defer stop()

		w, err := newWatcher(args[0], watchOut, watchFrom, watchTo)
		if err != nil {
			return err
		}
		return w.Run(ctx)
	},
}

type watcher struct {
	path string
	out  string
	from root.Root
	to   root.Root
	wait time.Duration

	// written is called after every rewrite of out
	written func(error)
}

func newWatcher(path, out string, from, to root.Root) (*watcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not resolve %v", path)
	}
	absOut, err := filepath.Abs(out)
	if err != nil {
		return nil, errors.Wrapf(err, "could not resolve %v", out)
	}
	if absPath == absOut {
		return nil, errors.New("--out must differ from the watched file")
	}
	return &watcher{
		path:    absPath,
		out:     absOut,
		from:    from,
		to:      to,
		wait:    constants.DebounceWait,
		written: func(error) {},
	}, nil
}

func (w *watcher) transpose() error {
	text, err := util.ReadInput(w.path, nil)
	if err != nil {
		return err
	}
	return util.WriteOutput(w.out, nil, chord.TransposeText(text, w.from, w.to))
}

// Run writes out once, then again after every burst of changes to path,
// until ctx is done.
func (w *watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "could not create watcher")
	}
	defer fw.Close()

	// editors often replace the file on save, so watch its directory
	if err := fw.Add(filepath.Dir(w.path)); err != nil {
		return errors.Wrapf(err, "could not watch %v", w.path)
	}
	if err := w.transpose(); err != nil {
		return err
	}
	w.written(nil)
	logging.L().Info("watching sheet",
		zap.String("path", w.path),
		zap.String("out", w.out),
		zap.Stringer("from", w.from),
		zap.Stringer("to", w.to))

	debounced := debounce.New(w.wait)
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path || !(event.Has(fsnotify.Write) || event.Has(fsnotify.Create)) {
				continue
			}
			debounced(func() {
				err := w.transpose()
				if err != nil {
					logging.L().Warn("could not transpose sheet", zap.Error(err))
				} else {
					logging.L().Info("transposed sheet", zap.String("out", w.out))
				}
				w.written(err)
			})
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			logging.L().Warn("watcher error", zap.Error(err))
		}
	}
}
