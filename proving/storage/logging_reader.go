package storage

import (
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ethereum/go-ethereum/log"
)

var progressInterval = 10 * time.Second

type loggingReader struct {
	io.Reader
	io.Closer
	message   string
	key       string
	size      int64
	started   atomic.Bool
	n         atomic.Int64
	done      chan struct{}
	exited    chan struct{}
	closeOnce sync.Once
}

func NewLoggingReader(r io.ReadCloser, message, key string, size int64) io.ReadCloser {
	return &loggingReader{
		Reader:  r,
		Closer:  r,
		message: message,
		key:     key,
		size:    size,
		done:    make(chan struct{}),
		exited:  make(chan struct{}),
	}
}

func (p *loggingReader) Read(b []byte) (int, error) {
	if p.started.CompareAndSwap(false, true) {
		go p.progress()
	}
	n, err := p.Reader.Read(b)
	p.n.Add(int64(n))
	return n, err
}

func (p *loggingReader) progress() {
	defer close(p.exited)
	ticker := time.NewTicker(progressInterval)
	defer ticker.Stop()
	for {
		n := p.n.Load()
		log.Info(p.message, "file", p.key, "current", n, "total", p.size, "percent", p.percent(n))
		select {
		case <-p.done:
			return
		case <-ticker.C:
		}
	}
}

func (p *loggingReader) percent(n int64) int64 {
	if p.size <= 0 {
		return 0
	}
	return n * 100 / p.size
}

func (p *loggingReader) Close() error {
	p.closeOnce.Do(func() { close(p.done) })
	log.Debug("Closed", "file", p.key, "current", p.n.Load(), "total", p.size)
	return p.Closer.Close()
}
