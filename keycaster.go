package main

import (
	"context"
	"os"

	"github.com/wasya-io/keycaster/app/boundary/ipc"
	"github.com/wasya-io/keycaster/app/boundary/logger"
	"github.com/wasya-io/keycaster/app/boundary/provider/evdev"
	"github.com/wasya-io/keycaster/app/boundary/provider/input"
	"github.com/wasya-io/keycaster/app/boundary/reader"
	"github.com/wasya-io/keycaster/app/boundary/writer"
	"github.com/wasya-io/keycaster/app/config"
	"github.com/wasya-io/keycaster/app/entity/core"
	"github.com/wasya-io/keycaster/app/entity/core/term"
	"github.com/wasya-io/keycaster/app/entity/event"
	"github.com/wasya-io/keycaster/app/entity/screen"
	"github.com/wasya-io/keycaster/app/usecase/caster"
	"github.com/wasya-io/keycaster/app/usecase/controller"
	"github.com/wasya-io/keycaster/app/usecase/engine"
	"github.com/wasya-io/keycaster/app/usecase/parser"
)

func NewKeycaster(ctx context.Context, conf *config.Config, opts *options) (*caster.Caster, error) {
	logger := logger.New(conf.DebugMode, conf.LogDir)

	// インプットプロバイダの初期化
	inputProvider, err := newInputProvider(ctx, conf, opts, logger)
	if err != nil {
		return nil, err
	}

	// イベントバスの初期化
	eventBus := event.NewBus()

	eng := engine.New(engine.Config{
		ShowMouseAction: conf.ShowMouseAction,
		ClearTimeout:    conf.ClearTimeout,
	}, controller.NewLoopScheduler(eventBus), logger)

	controller := controller.NewController(eng, inputProvider, logger, eventBus)

	writer := writer.NewStandardScreenWriter()
	cols := func() int { return term.Cols(os.Stdout) }
	screen := screen.NewScreen(writer, eng, controller.Paused(), cols, logger)

	ipcServer := ipc.NewServer(conf.SocketPath, logger)

	return caster.New(
		false,
		conf,
		logger,
		inputProvider,
		screen,
		controller,
		eventBus,
		ipcServer,
	)
}

func newInputProvider(ctx context.Context, conf *config.Config, opts *options, logger core.Logger) (input.Provider, error) {
	if opts.evdev {
		provider, err := evdev.Open(logger)
		if err != nil {
			return nil, err
		}
		return provider, nil
	}

	var lineReader reader.LineReader
	if opts.stdin {
		lineReader = reader.NewStdinLineReader()
	} else {
		watcher, err := reader.StartWatcher(ctx, conf.WatcherCommand, logger)
		if err != nil {
			return nil, err
		}
		lineReader = watcher
	}
	return input.NewStandardInputProvider(lineReader, parser.NewJSONLineParser()), nil
}
