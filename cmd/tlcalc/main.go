// Copyright 2026 Dolthub, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"io"
	"os"
	"strings"

	"github.com/attic-labs/kingpin"
	"github.com/fatih/color"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type kingpinHandler func(input string) error
type kingpinCommand func(app *kingpin.Application, e *env) (*kingpin.CmdClause, kingpinHandler)

var commands = []kingpinCommand{
	tlcalcShow,
	tlcalcCompress,
	tlcalcCombine,
	tlcalcSplit,
}

// env is shared by all commands. cfg is set once the arguments are parsed.
type env struct {
	out  io.Writer
	log  *logrus.Logger
	cfg  *YAMLConfig
	path string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	log := logrus.New()
	log.SetOutput(stderr)
	e := &env{out: stdout, log: log}

	kingpin.EnableFileExpansion = false
	app := kingpin.New("tlcalc", "Combines, compresses and splits date timelines stored as JSON.")
	app.ErrorWriter(stderr)
	app.UsageWriter(stderr)
	app.HelpFlag.Short('h')

	configPath := app.Flag("config", "YAML file with default settings").String()
	verbose := app.Flag("verbose", "log debug output").Short('v').Bool()
	path := app.Flag("path", "gjson path of the timeline inside each input document").String()

	handlers := map[string]kingpinHandler{}
	for _, cmdFunction := range commands {
		command, handler := cmdFunction(app, e)
		handlers[command.FullCommand()] = handler
	}

	input, err := app.Parse(args)
	if err != nil {
		log.WithError(err).Error("invalid arguments")
		return 1
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.WithError(err).WithField("config", *configPath).Error("cannot load config")
		return 1
	}
	e.cfg = cfg
	e.path = *path
	log.SetLevel(cfg.LogLevel())
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	if !cfg.Color() {
		color.NoColor = true
	}
	decimal.MarshalJSONWithoutQuotes = true

	handler := handlers[strings.Split(input, " ")[0]]
	log.WithField("command", input).Debug("running")
	if err := handler(input); err != nil {
		log.WithError(err).WithField("command", input).Error("command failed")
		return 1
	}
	return 0
}
