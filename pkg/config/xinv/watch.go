package xinv

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// WatchCallback 清单变更回调函数。
// 每次重载尝试后调用，err 表示重载是否成功；
// 失败时 inv 保留上一次成功加载的状态。
type WatchCallback func(inv *Inventory, err error)

// WatchOption 定义监视器可选配置。
type WatchOption func(*watchOptions)

type watchOptions struct {
	debounce time.Duration
}

func defaultWatchOptions() *watchOptions {
	return &watchOptions{
		debounce: 100 * time.Millisecond,
	}
}

// WithDebounce 设置防抖时间：窗口内的多次文件变更只触发一次重载。
// 默认 100ms。
func WithDebounce(d time.Duration) WatchOption {
	return func(o *watchOptions) {
		o.debounce = d
	}
}

// Watcher 监视清单文件变更并自动重载。
type Watcher struct {
	inv      *Inventory
	watcher  *fsnotify.Watcher
	callback WatchCallback
	debounce time.Duration
	ctx      context.Context
	cancel   context.CancelFunc
	mu       sync.Mutex
	running  bool
	timer    *time.Timer
}

// Watch 创建清单文件监视器。
// 只能监视从文件创建的清单；从字节数据创建的返回 [ErrReloadUnsupported]。
// 返回的 Watcher 需调用 [Watcher.Start] 或 [Watcher.StartAsync] 开始监视。
func Watch(inv *Inventory, callback WatchCallback, opts ...WatchOption) (*Watcher, error) {
	if inv.isBytes || inv.path == "" {
		return nil, ErrReloadUnsupported
	}

	options := defaultWatchOptions()
	for _, opt := range opts {
		opt(options)
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("xinv: failed to create watcher: %w", err)
	}

	// 监视清单文件所在目录而非文件本身：
	// 编辑器保存时可能先删除再创建，直接监视文件会丢失事件。
	dir := filepath.Dir(inv.path)
	if err := fsWatcher.Add(dir); err != nil {
		closeErr := fsWatcher.Close()
		return nil, errors.Join(
			fmt.Errorf("xinv: failed to watch directory %s: %w", dir, err),
			closeErr,
		)
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Watcher{
		inv:      inv,
		watcher:  fsWatcher,
		callback: callback,
		debounce: options.debounce,
		ctx:      ctx,
		cancel:   cancel,
	}, nil
}

// Start 启动监视。此方法阻塞，通常在 goroutine 中调用。
func (w *Watcher) Start() {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return
	}
	w.running = true
	w.mu.Unlock()

	w.run()
}

// StartAsync 在后台 goroutine 中启动监视，立即返回。
// 先设置 running 标志再启动 goroutine，避免与 Stop 的竞态。
func (w *Watcher) StartAsync() {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return
	}
	w.running = true
	w.mu.Unlock()

	go w.run()
}

// Stop 停止监视。幂等。
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.running {
		return nil
	}

	// 停掉防抖定时器，防止 Stop 后仍触发回调。
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}

	w.cancel()
	w.running = false
	return w.watcher.Close()
}

func (w *Watcher) run() {
	filename := filepath.Base(w.inv.path)

	for {
		select {
		case <-w.ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event, filename)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.callback(w.inv, fmt.Errorf("xinv: watch error: %w", err))
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event, filename string) {
	// 只关心目标清单文件。
	if filepath.Base(event.Name) != filename {
		return
	}

	// Write: 直接修改；Create: 部分编辑器新建；
	// Rename: 原子写入模式（写临时文件后 rename）。
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.running {
		return
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		err := w.inv.Reload()
		w.callback(w.inv, err)
	})
}
