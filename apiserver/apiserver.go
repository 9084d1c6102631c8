// Copyright (C) 2016-Present Pivotal Software, Inc. All rights reserved.
// This program and the accompanying materials are made available under the terms of the under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the specific language governing permissions and limitations under the License.

package apiserver

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"code.cloudfoundry.org/lager"
	"github.com/gorilla/mux"
	"github.com/pborman/uuid"
	"github.com/pivotal-cf/brokerapi/v7"
	"github.com/pkg/errors"
	"github.com/urfave/negroni"

	"github.com/MatthiasWinzeler/cf-rabbitmq-release/brokercontext"
	"github.com/MatthiasWinzeler/cf-rabbitmq-release/brokerlogging"
	"github.com/MatthiasWinzeler/cf-rabbitmq-release/config"
	"github.com/MatthiasWinzeler/cf-rabbitmq-release/loggerfactory"
)

// RequestIdentityHeader is sent by platforms implementing OSBAPI 2.15 and
// later. It is echoed back so both sides can find the same request in their
// logs.
const RequestIdentityHeader = "X-Broker-API-Request-Identity"

// New serves broker over the Open Service Broker API. Every lifecycle
// request is logged through the given stdout and stderr logger factories.
func New(
	conf config.Broker,
	broker brokerlogging.ServiceBroker,
	componentName string,
	stdoutLoggerFactory *loggerfactory.LoggerFactory,
	stderrLoggerFactory *loggerfactory.LoggerFactory,
	serverLogger *log.Logger,
) *http.Server {
	loggingBroker := brokerlogging.New(broker, conf.ServiceName, stdoutLoggerFactory, stderrLoggerFactory)

	router := mux.NewRouter()
	router.Use(requestIdentity)
	registerOSBAPI(loggingBroker, componentName, serverLogger, conf, router)

	server := negroni.New(
		negroni.NewRecovery(),
		createNegroniLogger(serverLogger),
		negroni.Wrap(router),
	)

	return &http.Server{
		Addr:    fmt.Sprintf(":%d", conf.Port),
		Handler: server,
	}
}

func registerOSBAPI(
	broker *brokerlogging.Broker,
	componentName string,
	serverLogger *log.Logger,
	conf config.Broker,
	router *mux.Router,
) {
	apiBrokerHandler := brokerapi.New(
		broker,
		createBrokerAPILogger(componentName, serverLogger),
		brokerapi.BrokerCredentials{
			Username: conf.Username,
			Password: conf.Password,
		})

	router.PathPrefix("/v2").Handler(apiBrokerHandler)
}

func requestIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(RequestIdentityHeader)
		if requestID == "" {
			requestID = uuid.New()
		}
		w.Header().Set(RequestIdentityHeader, requestID)

		ctx := brokercontext.WithReqID(r.Context(), requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func StartAndWait(conf config.Broker, server *http.Server, logger *log.Logger, stopServer chan os.Signal) error {
	stopped := make(chan struct{})
	signal.Notify(stopServer, os.Interrupt, syscall.SIGTERM)

	go handleBrokerTerminationSignal(stopServer, conf, logger, server, stopped)

	logger.Println("Listening on", server.Addr)

	err := server.ListenAndServe()
	if err != http.ErrServerClosed {
		return errors.Wrap(err, "error starting broker HTTP server")
	}

	<-stopped
	return nil
}

func handleBrokerTerminationSignal(stopServer chan os.Signal, conf config.Broker, logger *log.Logger, server *http.Server, stopped chan struct{}) {
	<-stopServer

	timeoutSecs := conf.ShutdownTimeoutSecs
	logger.Printf("Broker shutting down on signal (timeout %d secs)...\n", timeoutSecs)

	ctx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(timeoutSecs),
	)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Printf("Error gracefully shutting down server: %v\n", err)
	} else {
		logger.Println("Server gracefully shut down")
	}

	close(stopped)
}

func createNegroniLogger(serverLogger *log.Logger) *negroni.Logger {
	dateFormat := "2006/01/02 15:04:05.000000"
	logFormat := "Request {{.Method}} {{.Path}} Completed {{.Status}} in {{.Duration}} | Start Time: {{.StartTime}}"
	negroniLogger := negroni.NewLogger()
	negroniLogger.ALogger = serverLogger
	negroniLogger.SetFormat(logFormat)
	negroniLogger.SetDateFormat(dateFormat)
	return negroniLogger
}

func createBrokerAPILogger(componentName string, serverLogger *log.Logger) lager.Logger {
	brokerAPILogger := lager.NewLogger(componentName)
	brokerAPILogger.RegisterSink(lager.NewWriterSink(serverLogger.Writer(), lager.INFO))
	return brokerAPILogger
}
