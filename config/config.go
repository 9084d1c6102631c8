// Copyright (C) 2016-Present Pivotal Software, Inc. All rights reserved.
// This program and the accompanying materials are made available under the terms of the under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the specific language governing permissions and limitations under the License.

package config

import (
	"errors"
	"io/ioutil"

	pkgerrors "github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/MatthiasWinzeler/cf-rabbitmq-release/jobproperties"
)

// RenderContext is everything the director hands a job template at render
// time: the merged job properties, the consumed links and this instance's
// networks.
type RenderContext struct {
	Properties jobproperties.Manifest
	Links      jobproperties.Links
	Networks   jobproperties.Networks
}

type rawRenderContext struct {
	Properties interface{}            `yaml:"properties"`
	Links      jobproperties.Links    `yaml:"links"`
	Networks   jobproperties.Networks `yaml:"networks"`
}

func Parse(contextFilePath string) (RenderContext, error) {
	contextFileBytes, err := ioutil.ReadFile(contextFilePath)
	if err != nil {
		return RenderContext{}, pkgerrors.Wrap(err, "error reading render context file")
	}

	return ParseBytes(contextFileBytes)
}

func ParseBytes(contents []byte) (RenderContext, error) {
	var raw rawRenderContext
	if err := yaml.Unmarshal(contents, &raw); err != nil {
		return RenderContext{}, pkgerrors.Wrap(err, "error unmarshalling render context")
	}

	manifest, err := jobproperties.ParseManifest(raw.Properties)
	if err != nil {
		return RenderContext{}, err
	}

	return RenderContext{
		Properties: manifest,
		Links:      raw.Links,
		Networks:   raw.Networks,
	}, nil
}

type Broker struct {
	Port                int
	Username            string
	Password            string
	ServiceName         string `yaml:"service_name"`
	ShutdownTimeoutSecs int    `yaml:"shutdown_timeout_in_seconds"`
}

func (b Broker) Validate() error {
	if b.Port == 0 {
		return errors.New("broker.port can't be empty")
	}
	if b.Username == "" {
		return errors.New("broker.username can't be empty")
	}
	if b.Password == "" {
		return errors.New("broker.password can't be empty")
	}
	if b.ServiceName == "" {
		return errors.New("broker.service_name can't be empty")
	}

	return nil
}

func ParseBroker(configFilePath string) (Broker, error) {
	configFileBytes, err := ioutil.ReadFile(configFilePath)
	if err != nil {
		return Broker{}, err
	}

	var config struct {
		Broker Broker
	}
	if err := yaml.Unmarshal(configFileBytes, &config); err != nil {
		return Broker{}, err
	}

	if err := config.Broker.Validate(); err != nil {
		return Broker{}, err
	}

	return config.Broker, nil
}
