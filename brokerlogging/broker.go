// Copyright (C) 2016-Present Pivotal Software, Inc. All rights reserved.
// This program and the accompanying materials are made available under the terms of the under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the specific language governing permissions and limitations under the License.

package brokerlogging

import (
	"context"

	"github.com/pborman/uuid"
	"github.com/pivotal-cf/brokerapi/v7/domain"

	"github.com/MatthiasWinzeler/cf-rabbitmq-release/brokercontext"
	"github.com/MatthiasWinzeler/cf-rabbitmq-release/loggerfactory"
)

type OperationType string

const (
	OperationTypeProvision   OperationType = "provision"
	OperationTypeDeprovision OperationType = "deprovision"
	OperationTypeBind        OperationType = "bind"
	OperationTypeUnbind      OperationType = "unbind"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate
//counterfeiter:generate -o fakes/fake_service_broker.go . ServiceBroker
type ServiceBroker interface {
	domain.ServiceBroker
}

// Broker records every lifecycle request it passes to the wrapped broker:
// the request on stdout, and any failure on stderr.
type Broker struct {
	ServiceBroker
	serviceName string
	stdout      *loggerfactory.LoggerFactory
	stderr      *loggerfactory.LoggerFactory
}

func New(broker ServiceBroker, serviceName string, stdout, stderr *loggerfactory.LoggerFactory) *Broker {
	return &Broker{
		ServiceBroker: broker,
		serviceName:   serviceName,
		stdout:        stdout,
		stderr:        stderr,
	}
}

func (b *Broker) Provision(ctx context.Context, instanceID string, details domain.ProvisionDetails, asyncAllowed bool) (domain.ProvisionedServiceSpec, error) {
	ctx = b.asked(ctx, OperationTypeProvision, instanceID)

	spec, err := b.ServiceBroker.Provision(ctx, instanceID, details, asyncAllowed)
	if err != nil {
		b.failed(ctx, OperationTypeProvision, instanceID, err)
	}
	return spec, err
}

func (b *Broker) Deprovision(ctx context.Context, instanceID string, details domain.DeprovisionDetails, asyncAllowed bool) (domain.DeprovisionServiceSpec, error) {
	ctx = b.asked(ctx, OperationTypeDeprovision, instanceID)

	spec, err := b.ServiceBroker.Deprovision(ctx, instanceID, details, asyncAllowed)
	if err != nil {
		b.failed(ctx, OperationTypeDeprovision, instanceID, err)
	}
	return spec, err
}

func (b *Broker) Bind(ctx context.Context, instanceID, bindingID string, details domain.BindDetails, asyncAllowed bool) (domain.Binding, error) {
	ctx = brokercontext.WithBindingID(ctx, bindingID)
	ctx = b.asked(ctx, OperationTypeBind, instanceID)

	binding, err := b.ServiceBroker.Bind(ctx, instanceID, bindingID, details, asyncAllowed)
	if err != nil {
		b.failed(ctx, OperationTypeBind, instanceID, err)
	}
	return binding, err
}

func (b *Broker) Unbind(ctx context.Context, instanceID, bindingID string, details domain.UnbindDetails, asyncAllowed bool) (domain.UnbindSpec, error) {
	ctx = brokercontext.WithBindingID(ctx, bindingID)
	ctx = b.asked(ctx, OperationTypeUnbind, instanceID)

	spec, err := b.ServiceBroker.Unbind(ctx, instanceID, bindingID, details, asyncAllowed)
	if err != nil {
		b.failed(ctx, OperationTypeUnbind, instanceID, err)
	}
	return spec, err
}

func (b *Broker) asked(ctx context.Context, operation OperationType, instanceID string) context.Context {
	requestID := brokercontext.GetReqID(ctx)
	if requestID == "" {
		requestID = uuid.New()
	}
	ctx = brokercontext.New(ctx, string(operation), requestID, b.serviceName, instanceID)

	b.stdout.NewWithContext(ctx).Printf("Asked to %s a service: %s\n", operation, instanceID)
	return ctx
}

func (b *Broker) failed(ctx context.Context, operation OperationType, instanceID string, err error) {
	b.stderr.NewWithContext(ctx).Printf("Failed to %s a service: %s: %s\n", operation, instanceID, err)
}
