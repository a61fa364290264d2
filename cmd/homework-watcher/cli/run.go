package cli

import (
	"errors"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/coreos/go-systemd/v22/daemon"
	"github.com/davarch/homework-watcher/internal/application"
	"github.com/davarch/homework-watcher/internal/infrastructure/cache_fs"
	"github.com/davarch/homework-watcher/internal/infrastructure/config"
	"github.com/davarch/homework-watcher/internal/infrastructure/logging"
	"github.com/davarch/homework-watcher/internal/infrastructure/notify_telegram"
	"github.com/davarch/homework-watcher/internal/infrastructure/practicum_http"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the polling daemon",
	Run: func(cmd *cobra.Command, args []string) {
		log := logging.New()
		defer func() { _ = log.Sync() }()

		cfg, err := config.Load(cfgPath)
		if err != nil {
			var missing *config.MissingConfigError
			if errors.As(err, &missing) {
				log.Fatal("configuration incomplete", zap.Strings("missing", missing.Vars))
			}
			log.Fatal("config", zap.Error(err))
		}

		client := practicum_http.New(cfg.Practicum.Endpoint, cfg.Practicum.Token, cfg.Practicum.Timeout)

		note, err := notify_telegram.New(cfg.Telegram.Token, cfg.Telegram.ChatID)
		if err != nil {
			log.Fatal("telegram", zap.Error(err))
		}

		cache := cache_fs.New(cfg.Cache.Path)

		uc := application.NewPollUseCase(client, note, cache, log, time.Now().Unix())
		sched := application.NewScheduler(log, uc, cfg.Poll.Interval, cfg.Poll.PauseFile)

		watchAndReload(cfgPath, log, sched, note)

		ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		if _, err := daemon.SdNotify(false, daemon.SdNotifyReady); err != nil {
			log.Warn("sd_notify", zap.Error(err))
		}

		log.Info("start",
			zap.String("version", version),
			zap.Duration("every", cfg.Poll.Interval),
			zap.String("endpoint", cfg.Practicum.Endpoint),
			zap.Int64("chat", cfg.Telegram.ChatID),
			zap.String("cache", cfg.Cache.Path),
			zap.String("pause_file", cfg.Poll.PauseFile),
		)
		sched.Run(ctx)

		_, _ = daemon.SdNotify(false, daemon.SdNotifyStopping)
		log.Info("stopped")
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}

// watchAndReload pushes config edits into the running daemon: a new
// interval to the scheduler, a new chat ID to the notifier. Events are
// debounced because editors fire several writes per save.
func watchAndReload(cfgPath string, log *zap.Logger, sched *application.Scheduler, note *notify_telegram.Notifier) {
	if cfgPath == "" {
		return
	}

	dir := filepath.Dir(cfgPath)
	base := filepath.Base(cfgPath)

	w, err := fsnotify.NewWatcher()
	if err != nil {
		log.Warn("fsnotify init failed", zap.Error(err))
		return
	}

	go func() {
		defer func() { _ = w.Close() }()

		var timer *time.Timer

		fire := func() {
			cfg, err := config.Load(cfgPath)
			if err != nil {
				log.Warn("config reload failed", zap.Error(err))
				return
			}
			sched.SetInterval(cfg.Poll.Interval)
			note.SetRecipient(cfg.Telegram.ChatID)
			log.Info("config reloaded",
				zap.Duration("every", cfg.Poll.Interval),
				zap.Int64("chat", cfg.Telegram.ChatID),
			)
		}

		startTimer := func() {
			if timer == nil {
				timer = time.AfterFunc(300*time.Millisecond, fire)
				return
			}
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(300 * time.Millisecond)
		}

		if err := w.Add(dir); err != nil {
			log.Warn("fsnotify add dir failed", zap.String("dir", dir), zap.Error(err))
			return
		}

		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}

				if filepath.Base(ev.Name) != base {
					continue
				}

				if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
					startTimer()
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				log.Warn("fsnotify error", zap.Error(err))
			}
		}
	}()
}
