// Copyright (C) 2016-Present Pivotal Software, Inc. All rights reserved.
// This program and the accompanying materials are made available under the terms of the under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the specific language governing permissions and limitations under the License.

package brokercontext_test

import (
	"context"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	. "github.com/MatthiasWinzeler/cf-rabbitmq-release/brokercontext"
)

var _ = Describe("BrokerContext", func() {
	var ctx context.Context

	BeforeEach(func() {
		ctx = context.Background()
	})

	Describe("New", func() {
		It("sets the operation, requestID, serviceName and instanceID", func() {
			ctx = New(ctx, "provision", "b79ebe6d-b325-45a5-8d57-7bfa2e8b18d7", "p-rabbitmq", "a-vhost")

			Expect(GetOperation(ctx)).To(Equal("provision"))
			Expect(GetReqID(ctx)).To(Equal("b79ebe6d-b325-45a5-8d57-7bfa2e8b18d7"))
			Expect(GetServiceName(ctx)).To(Equal("p-rabbitmq"))
			Expect(GetInstanceID(ctx)).To(Equal("a-vhost"))
			Expect(GetBindingID(ctx)).To(BeEmpty())
		})
	})

	Describe("Binding ID", func() {
		It("can be set and retrieved", func() {
			ctx = WithBindingID(ctx, "binding-id")
			Expect(GetBindingID(ctx)).To(Equal("binding-id"))
		})
	})

	It("returns empty values when nothing was set", func() {
		Expect(GetOperation(ctx)).To(BeEmpty())
		Expect(GetReqID(ctx)).To(BeEmpty())
		Expect(GetServiceName(ctx)).To(BeEmpty())
		Expect(GetInstanceID(ctx)).To(BeEmpty())
	})

	It("does not mix up values stored under different keys", func() {
		ctx = WithReqID(ctx, "req")
		ctx = WithInstanceID(ctx, "instance")
		ctx = WithBindingID(ctx, "binding")

		Expect(GetReqID(ctx)).To(Equal("req"))
		Expect(GetInstanceID(ctx)).To(Equal("instance"))
		Expect(GetBindingID(ctx)).To(Equal("binding"))
		Expect(GetOperation(ctx)).To(BeEmpty())
	})
})
