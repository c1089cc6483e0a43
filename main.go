package main

import (
	"flag"
	"os"

	"github.com/golang/glog"
	"github.com/prebid/adstxt/logger"
)

// Rev holds binary revision string
// Set manually at build time using:
//
//	go build -ldflags "-X main.Rev=`git rev-parse --short HEAD`"
var Rev string

const configFileName = "adstxt"

func main() {
	// glog flags live on the standard flag set; cobra parses them along with its own.
	flag.Set("logtostderr", "true")
	flag.CommandLine.Parse([]string{})

	cmd := newRootCommand(os.Stdin, os.Stdout)
	cmd.PersistentFlags().AddGoFlagSet(flag.CommandLine)

	if err := cmd.Execute(); err != nil {
		logger.Errorf("adstxt failed: %v", err)
		glog.Flush()
		os.Exit(1)
	}
	glog.Flush()
}
