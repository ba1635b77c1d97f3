package api

import (
	"github.com/lysyi3m/appcast-comb/app/config"
	"github.com/lysyi3m/appcast-comb/app/parser"
)

type Handler struct {
	appcastConfig *config.AppcastConfig
	parser        *parser.Parser
	appcast       string
}
