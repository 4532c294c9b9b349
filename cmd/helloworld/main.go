// Command helloworld is the literal workload used to exercise this
// toolkit end to end: it binds a TCP control socket and writes one
// lifecycle message per line as the service starts, runs, and stops.
//
// Interactive mode (no args) binds 127.0.0.1:53164 and writes "regular"
// instead of "service" as its first message. Service mode (`helloworld
// service [addr]`) binds 127.0.0.1:53165 by default.
package main

import (
	"bufio"
	"log"
	"net"
	"os"
	"sync"

	"github.com/hlandau/svcrun"
)

func main() {
	info := &svcrun.Info{
		Name:        "helloworld",
		Title:       "Hello World Service",
		Description: "minimal workload exercising svcrun's lifecycle",
		RunFunc:     run,
	}
	svcrun.Main(info)
}

func run(smgr svcrun.Manager) error {
	addr := "127.0.0.1:53164"
	firstLine := "regular"

	if len(os.Args) > 1 && os.Args[1] == "service" {
		firstLine = "service"
		addr = "127.0.0.1:53165"
		if len(os.Args) > 2 {
			addr = os.Args[2]
		}
	}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	defer ln.Close()

	b := newBroadcaster()
	go b.acceptLoop(ln)

	b.send(firstLine)
	b.send("starting")
	if err := smgr.DropPrivileges(); err != nil {
		return err
	}
	smgr.SetStarted()
	b.send("running")
	smgr.SetStatus("running")

	<-smgr.StopChan()

	b.send("stopping")
	smgr.SetStatus("stopping")
	b.send("quitting")
	b.send("goodbye")

	b.closeAll()
	return nil
}

// broadcaster fans every send out to each control-socket client
// connected at the time of the call; clients that connect afterward
// never see earlier lines, matching a plain line-oriented tail.
type broadcaster struct {
	mu      sync.Mutex
	clients map[net.Conn]*bufio.Writer
}

func newBroadcaster() *broadcaster {
	return &broadcaster{clients: make(map[net.Conn]*bufio.Writer)}
}

func (b *broadcaster) acceptLoop(ln net.Listener) {
	for {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		b.mu.Lock()
		b.clients[conn] = bufio.NewWriter(conn)
		b.mu.Unlock()
	}
}

func (b *broadcaster) send(line string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for conn, w := range b.clients {
		if _, err := w.WriteString(line + "\n"); err != nil {
			delete(b.clients, conn)
			continue
		}
		if err := w.Flush(); err != nil {
			delete(b.clients, conn)
		}
	}
}

func (b *broadcaster) closeAll() {
	b.mu.Lock()
	defer b.mu.Unlock()
	for conn := range b.clients {
		if err := conn.Close(); err != nil {
			log.Printf("helloworld: error closing control connection: %v", err)
		}
	}
}
