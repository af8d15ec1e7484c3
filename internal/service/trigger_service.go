package service

import (
	"context"
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/robfig/cron/v3"

	"clipdeck/internal/domain"
)

// ─────────────────────────────────────────────────────────────
// Trigger Service — shortcuts, schedules and file watches
// ─────────────────────────────────────────────────────────────

// ClipRunner is the execution contract the trigger service fires against.
// The engine implements it; tests substitute a stub.
type ClipRunner interface {
	Run(ctx context.Context, clipID string) (domain.RunResult, error)
}

// TriggerService re-runs clips from outside the UI: global keyboard
// shortcuts, cron schedules and filesystem watches, all read from clip
// block properties. Every trigger path funnels into the same runClip
// call and reports the same result envelope.
type TriggerService struct {
	blocks    domain.BlockStore
	runner    ClipRunner
	registrar ShortcutRegistrar
	emitter   EventEmitter

	// watcher / cron lifecycle
	watchCancel context.CancelFunc
	watcher     *fsnotify.Watcher
	cronSched   *cron.Cron
}

func NewTriggerService(blocks domain.BlockStore, runner ClipRunner, registrar ShortcutRegistrar, emitter EventEmitter) *TriggerService {
	return &TriggerService{blocks: blocks, runner: runner, registrar: registrar, emitter: emitter}
}

// SyncShortcuts re-registers every clip shortcut wholesale: unregister
// all, then claim the accelerator of each clip carrying one. The first
// clip claiming a given accelerator wins.
func (s *TriggerService) SyncShortcuts(ctx context.Context) {
	s.registrar.UnregisterAll()

	clips, err := s.clipBlocks()
	if err != nil {
		log.Printf("trigger: failed to list clips: %v", err)
		return
	}

	registered := 0
	for _, clip := range clips {
		accel := clip.Shortcut()
		if accel == "" {
			continue
		}
		clipID := clip.ID
		if s.registrar.Register(accel, func() { s.runAndReport(ctx, clipID) }) {
			registered++
		} else {
			log.Printf("trigger: failed to register global shortcut %q for clip %s", accel, clipID)
		}
	}
	if registered > 0 {
		log.Printf("trigger: registered %d global shortcut(s)", registered)
	}
}

// RestartTriggers tears down the current watcher/cron and rebuilds them
// from the stored clips.
func (s *TriggerService) RestartTriggers(ctx context.Context) {
	s.stopTriggers()

	clips, err := s.clipBlocks()
	if err != nil {
		log.Printf("trigger: failed to list clips: %v", err)
		return
	}

	s.startCron(ctx, clips)
	s.startWatcher(ctx, clips)
}

// Stop tears down all watchers and schedulers.
func (s *TriggerService) Stop() {
	s.registrar.UnregisterAll()
	s.stopTriggers()
}

func (s *TriggerService) clipBlocks() ([]domain.Block, error) {
	all, err := s.blocks.FindAll()
	if err != nil {
		return nil, err
	}
	var clips []domain.Block
	for _, b := range all {
		if b.Type == domain.BlockTypeClip {
			clips = append(clips, b)
		}
	}
	return clips, nil
}

// runAndReport runs one clip and forwards its envelope to the frontend.
// Storage failures are translated into an error envelope here — the
// trigger paths have no other caller to reject to.
func (s *TriggerService) runAndReport(ctx context.Context, clipID string) {
	res, err := s.runner.Run(ctx, clipID)
	if err != nil {
		log.Printf("trigger: clip %s failed: %v", clipID, err)
		res = domain.Failure(err.Error())
	}
	if res.Error {
		log.Printf("[clip run] ERROR: %s", res.Message)
	} else {
		log.Printf("[clip run] SUCCESS: %s", res.Message)
	}
	s.emitter.Emit(ctx, EventClipRunDone, res)
}

func (s *TriggerService) startCron(ctx context.Context, clips []domain.Block) {
	var scheduled int
	c := cron.New()
	for _, clip := range clips {
		expr := clip.Schedule()
		if expr == "" {
			continue
		}
		clipID := clip.ID
		if _, err := c.AddFunc(expr, func() {
			log.Printf("trigger cron: running clip %s", clipID)
			s.runAndReport(ctx, clipID)
		}); err != nil {
			log.Printf("trigger cron: invalid expression %q for clip %s: %v", expr, clipID, err)
			continue
		}
		scheduled++
	}

	if scheduled == 0 {
		return
	}
	c.Start()
	s.cronSched = c
	log.Printf("trigger cron: scheduled %d clip(s)", scheduled)
}

func (s *TriggerService) startWatcher(ctx context.Context, clips []domain.Block) {
	pathToClip := make(map[string]string)
	for _, clip := range clips {
		for _, p := range clip.WatchPaths() {
			absPath, err := filepath.Abs(p)
			if err != nil {
				log.Printf("trigger watcher: bad path %q: %v", p, err)
				continue
			}
			// First clip watching a path wins, same as shortcuts.
			if _, taken := pathToClip[absPath]; !taken {
				pathToClip[absPath] = clip.ID
			}
		}
	}
	if len(pathToClip) == 0 {
		return
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		log.Printf("trigger watcher: failed to create watcher: %v", err)
		return
	}
	s.watcher = watcher

	watchedDirs := make(map[string]bool)
	for absPath := range pathToClip {
		dir := filepath.Dir(absPath)
		if watchedDirs[dir] {
			continue
		}
		if err := watcher.Add(dir); err != nil {
			log.Printf("trigger watcher: failed to watch dir %q: %v", dir, err)
		} else {
			watchedDirs[dir] = true
		}
	}

	watchCtx, cancel := context.WithCancel(context.Background())
	s.watchCancel = cancel

	go func() {
		timers := make(map[string]*time.Timer)
		for {
			select {
			case <-watchCtx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				absPath, _ := filepath.Abs(event.Name)
				clipID, ok := pathToClip[absPath]
				if !ok {
					continue
				}
				if t, exists := timers[clipID]; exists {
					t.Stop()
				}
				cid := clipID
				timers[clipID] = time.AfterFunc(500*time.Millisecond, func() {
					log.Printf("trigger watcher: file changed %q, running clip %s", absPath, cid)
					s.runAndReport(ctx, cid)
				})
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Printf("trigger watcher: error: %v", err)
			}
		}
	}()

	log.Printf("trigger watcher: watching %d file(s)", len(pathToClip))
}

func (s *TriggerService) stopTriggers() {
	if s.watchCancel != nil {
		s.watchCancel()
		s.watchCancel = nil
	}
	if s.watcher != nil {
		s.watcher.Close()
		s.watcher = nil
	}
	if s.cronSched != nil {
		s.cronSched.Stop()
		s.cronSched = nil
	}
}
