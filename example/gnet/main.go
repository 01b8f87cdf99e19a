package main

import (
	"github.com/lixenwraith/devlog"
	"github.com/lixenwraith/devlog/compat"
	"github.com/panjf2000/gnet/v2"
)

// Example gnet event handler
type echoServer struct {
	gnet.BuiltinEventEngine
}

func (es *echoServer) OnTraffic(c gnet.Conn) gnet.Action {
	buf, _ := c.Next(-1)
	c.Write(buf)
	return gnet.None
}

func main() {
	builder := compat.NewBuilder().WithConfig(func() *devlog.Config {
		cfg := devlog.DefaultConfig()
		cfg.Level = devlog.LevelDebug
		cfg.Format = "json"
		return cfg
	}())

	gnetAdapter, err := builder.BuildGnet()
	if err != nil {
		panic(err)
	}

	root, err := builder.GetRoot()
	if err != nil {
		panic(err)
	}

	// Every OnTraffic call is reported as "traffic took N.NNs" under the "server" category
	timer := devlog.NewTimer("traffic").WithLogger(root.Logger("server"))

	err = gnet.Run(
		compat.NewTimedEventHandler(timer, &echoServer{}),
		"tcp://127.0.0.1:9000",
		gnet.WithMulticore(true),
		gnet.WithLogger(gnetAdapter),
		gnet.WithReusePort(true),
	)
	if err != nil {
		panic(err)
	}
}
