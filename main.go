package main

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
	"github.com/wasya-io/keycaster/app/boundary/ipc"
	"github.com/wasya-io/keycaster/app/config"
)

type options struct {
	stdin  bool
	evdev  bool
	toggle bool
}

func main() {
	// グローバルなパニックハンドラを設定
	defer func() {
		if r := recover(); r != nil {
			// 端末をリセットするエスケープシーケンス
			fmt.Print("\r\x1b[2K") // 行をクリア
			fmt.Print("\x1b[?25h") // カーソルを表示

			fmt.Fprintf(os.Stderr, "keycaster crashed: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s", debug.Stack())
			os.Exit(1)
		}
	}()

	if err := newRootCmd().Execute(); err != nil {
		die(err)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "keycaster",
		Short:         "Show pressed keys and modifiers on one terminal line",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			conf := config.LoadConfig()
			if opts.toggle {
				return sendToggle(cmd, conf.SocketPath)
			}
			return run(cmd, conf, opts)
		},
	}

	root.Flags().BoolVar(&opts.stdin, "stdin", false, "read key events as JSON lines from stdin")
	root.Flags().BoolVar(&opts.evdev, "evdev", false, "read key events directly from /dev/input")
	root.Flags().BoolVar(&opts.toggle, "toggle", false, "pause or resume the running instance and exit")
	root.MarkFlagsMutuallyExclusive("stdin", "evdev", "toggle")

	return root
}

func sendToggle(cmd *cobra.Command, socketPath string) error {
	reply, err := ipc.Send(socketPath, ipc.RequestToggle)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), reply)
	return nil
}

func run(cmd *cobra.Command, conf *config.Config, opts *options) error {
	k, err := NewKeycaster(cmd.Context(), conf, opts)
	if err != nil {
		return err
	}
	defer k.Cleanup() // 確実なクリーンアップを保証

	if err := k.Run(cmd.Context()); err != nil {
		if errors.Is(err, ipc.ErrAlreadyRunning) {
			return fmt.Errorf("%w (use --toggle to pause it)", err)
		}
		return err
	}
	return nil
}

func die(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
