// airgap derives Bitcoin key material from seed words, offline and
// deterministically.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := execute(ctx, &app{}, os.Args[1:], nil)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
