// Copyright (C) 2016-Present Pivotal Software, Inc. All rights reserved.
// This program and the accompanying materials are made available under the terms of the under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the specific language governing permissions and limitations under the License.

package loggerfactory

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/MatthiasWinzeler/cf-rabbitmq-release/brokercontext"
)

const Flags = log.Ldate | log.Ltime | log.Lmicroseconds | log.LUTC

type LoggerFactory struct {
	out  io.Writer
	name string
	flag int
}

func New(out io.Writer, name string, flag int) *LoggerFactory {
	return &LoggerFactory{out: out, name: name, flag: flag}
}

// NewWithContext tags every line with the request ID, and the operation when
// one is present, so the stdout and stderr streams of a request can be joined.
func (l *LoggerFactory) NewWithContext(ctx context.Context) *log.Logger {
	reqID := brokercontext.GetReqID(ctx)
	if reqID == "" {
		return l.New()
	}

	prefix := fmt.Sprintf("[%s] [%s] ", l.name, reqID)
	if operation := brokercontext.GetOperation(ctx); operation != "" {
		prefix = fmt.Sprintf("[%s] [%s] [%s] ", l.name, reqID, operation)
	}
	return log.New(l.out, prefix, l.flag)
}

func (l *LoggerFactory) New() *log.Logger {
	prefix := fmt.Sprintf("[%s] ", l.name)
	return log.New(l.out, prefix, l.flag)
}
