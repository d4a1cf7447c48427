/*
 * Copyright 2025 AlexeyGordiychenko.
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package main

import (
	"flag"

	"github.com/AlexeyGordiychenko/shopapi"
	"github.com/AlexeyGordiychenko/shopapi/api"
	"github.com/AlexeyGordiychenko/shopapi/config"
	"github.com/AlexeyGordiychenko/shopapi/database"
	"github.com/AlexeyGordiychenko/shopapi/utils"
)

func main() {
	configPath := flag.String("config", "", "path to the YAML configuration file")
	flag.Parse()

	logger := utils.NewLogger("MAIN")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.WithError(err).Fatal("Failed to load configuration")
	}
	utils.ConfigureLogFormat(cfg.Log.Format)
	utils.ConfigureLogLevel(cfg.Log.Level)

	db, err := database.InitDB(cfg.Database.ToConnectionConfig())
	if err != nil {
		logger.WithError(err).Fatal("Failed to initialize database")
	}
	defer func() {
		if err := database.CloseDB(); err != nil {
			logger.WithError(err).Error("Failed to close database")
		}
	}()

	services := shopapi.NewServices(db)
	e := api.NewRouter(services)

	logger.Infof("%s %s listening on %s", shopapi.ServiceName, shopapi.ServiceVersion, cfg.Server.Address())
	e.Logger.Fatal(e.Start(cfg.Server.Address()))
}
