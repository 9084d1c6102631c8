package clusterconfig

import (
	"bytes"
	"io"
	"text/template"

	"github.com/pkg/errors"
)

var setupScript = template.Must(template.New("setup.sh").Parse(`#!/usr/bin/env bash

set -e

SCRIPT_DIR=$(dirname "$0")
CLUSTER_CONFIG="${SCRIPT_DIR}/../etc/cluster.config"
INETRC="${SCRIPT_DIR}/../etc/inetrc"

HOSTS=""
{{range .Hosts -}}
{{.}}
{{end -}}
echo -e "${HOSTS}" > "${INETRC}"
export ERL_INETRC="${INETRC}"
{{- if .NodeName}}

export NODENAME={{.NodeName}}
{{- end}}

SERVER_START_ARGS='{{.ServerStartArgs}}'
{{- if .SSLOptions}}
SSL_OPTIONS="{{.SSLOptions}}"
SERVER_START_ARGS="${SERVER_START_ARGS}${SSL_OPTIONS}"
{{- end}}
export SERVER_START_ARGS
`))

func (c RenderedConfig) WriteScript(w io.Writer) error {
	return errors.Wrap(setupScript.Execute(w, c), "error rendering setup.sh")
}

func (c RenderedConfig) Script() (string, error) {
	var buf bytes.Buffer
	if err := c.WriteScript(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
