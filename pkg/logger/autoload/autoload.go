// Package autoload initializes the global logger from LOG_-prefixed
// environment variables when blank-imported.
package autoload

import (
	configx "github.com/orderflowlabs/orderflow-agent/pkg/config"
	logx "github.com/orderflowlabs/orderflow-agent/pkg/logger"
)

func init() {
	conf := configx.MustNew[logx.Config]("LOG")
	logx.Init(*conf)
}
