/*
 * Copyright 2025 tomoncle.
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

// Command server runs the storefront HTTP API.
package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"storefront/api"
	"storefront/config"
	"storefront/database"
	"storefront/utils"
)

var log = utils.NewLogger("SERVER")

func main() {
	configPath := flag.String("config", utils.EnvDefaultString("STOREFRONT_CONFIG", "config.yaml"), "path to YAML configuration")
	addr := flag.String("addr", "", "listen address, overrides the configured host:port")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load configuration: %v", err)
	}
	cfg.ApplyLogging()

	database.InitLogger(database.NewDefaultLogger("DATABASE"))
	if _, err := database.InitDB(cfg.ConfigLoader()); err != nil {
		log.Fatalf("initialize database: %v", err)
	}
	defer func() { _ = database.CloseDB() }()

	if utils.EnvDefaultBool("DEBUG", false) {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	router := api.NewRouter(api.Options{AllowedOrigins: cfg.Server.AllowedOrigins})

	listen := cfg.Server.Addr()
	if *addr != "" {
		listen = *addr
	}
	server := &http.Server{Addr: listen, Handler: router}

	go func() {
		log.Infof("listening on %s", listen)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("serve: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Errorf("shutdown: %v", err)
	}
}
