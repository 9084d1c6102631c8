package main

import (
	"bytes"
	"flag"
	"io"
	"io/ioutil"
	"log"
	"os"

	"github.com/MatthiasWinzeler/cf-rabbitmq-release/clusterconfig"
	"github.com/MatthiasWinzeler/cf-rabbitmq-release/config"
	"github.com/MatthiasWinzeler/cf-rabbitmq-release/loggerfactory"
)

func main() {
	loggerFactory := loggerfactory.New(os.Stderr, "rabbitmq-server-setup", loggerfactory.Flags)
	logger := loggerFactory.New()

	contextPath, outputPath := parseFlags(logger)

	renderContext, err := config.Parse(contextPath)
	if err != nil {
		logger.Fatalf("error parsing render context: %s", err)
	}

	rendered, err := clusterconfig.Render(renderContext.Properties, renderContext.Links, renderContext.Networks)
	if err != nil {
		logger.Fatalf("error rendering cluster configuration: %s", err)
	}
	logger.Printf("rendering %d cluster member(s) from %s\n", len(rendered.Members.Nodes), rendered.Members.Source)

	if outputPath == "" {
		writeScript(rendered, os.Stdout, logger)
		return
	}

	var script bytes.Buffer
	writeScript(rendered, &script, logger)
	if err := ioutil.WriteFile(outputPath, script.Bytes(), 0755); err != nil {
		logger.Fatalf("error writing %s: %s", outputPath, err)
	}
	logger.Printf("wrote %s\n", outputPath)
}

func writeScript(rendered clusterconfig.RenderedConfig, out io.Writer, logger *log.Logger) {
	if err := rendered.WriteScript(out); err != nil {
		logger.Fatal(err)
	}
}

func parseFlags(logger *log.Logger) (string, string) {
	var contextPath, outputPath string
	flag.StringVar(&contextPath, "contextPath", "", "path to the render context YAML")
	flag.StringVar(&outputPath, "outputPath", "", "path to write setup.sh to, defaults to stdout")
	flag.Parse()

	if contextPath == "" {
		logger.Fatalln("-contextPath must be given as argument")
	}
	return contextPath, outputPath
}
