package main_test

import (
	"io/ioutil"
	"os"
	"os/exec"
	"path/filepath"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"
	"github.com/onsi/gomega/gexec"
)

var _ = Describe("rabbitmq-server-setup", func() {
	fixture := func(name string) string {
		path, err := filepath.Abs(filepath.Join("fixtures", name))
		Expect(err).NotTo(HaveOccurred())
		return path
	}

	run := func(args ...string) *gexec.Session {
		session, err := gexec.Start(exec.Command(binaryPath, args...), GinkgoWriter, GinkgoWriter)
		Expect(err).NotTo(HaveOccurred())
		Eventually(session).Should(gexec.Exit())
		return session
	}

	It("writes the setup script to stdout", func() {
		session := run("-contextPath", fixture("two_node_context.yml"))

		Expect(session.ExitCode()).To(Equal(0))
		Expect(session.Out).To(gbytes.Say(`HOSTS="\$\{HOSTS\}\{host, \{1,1,1,1\}, \[\\"e086aa137fa19f67d27b39d0eca18610\\"\]\}\.\\n"`))
		Expect(session.Out).To(gbytes.Say(`export NODENAME=rabbit@5b8656aafcb40bb58caf1d17ef8506a9`))
		Expect(session.Out).To(gbytes.Say(`-rabbit cluster_nodes \{\[rabbit@e086aa137fa19f67d27b39d0eca18610,rabbit@5b8656aafcb40bb58caf1d17ef8506a9\],disc\}`))
		Expect(session.Out).To(gbytes.Say(`cluster_partition_handling autoheal`))
		Expect(session.Err).To(gbytes.Say(`rendering 2 cluster member\(s\) from rabbitmq-server link`))
	})

	It("writes the setup script to a file when asked to", func() {
		dir, err := ioutil.TempDir("", "rabbitmq-server-setup")
		Expect(err).NotTo(HaveOccurred())
		defer os.RemoveAll(dir)
		outputPath := filepath.Join(dir, "setup.sh")

		session := run("-contextPath", fixture("two_node_context.yml"), "-outputPath", outputPath)

		Expect(session.ExitCode()).To(Equal(0))
		Expect(session.Out.Contents()).To(BeEmpty())

		script, err := ioutil.ReadFile(outputPath)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(script)).To(HavePrefix("#!/usr/bin/env bash\n"))

		info, err := os.Stat(outputPath)
		Expect(err).NotTo(HaveOccurred())
		Expect(info.Mode() & 0100).NotTo(BeZero())
	})

	It("fails without a context path", func() {
		session := run()

		Expect(session.ExitCode()).To(Equal(1))
		Expect(session.Err).To(gbytes.Say("-contextPath must be given as argument"))
	})

	It("fails when the context file does not exist", func() {
		session := run("-contextPath", "/not/a/real/path.yml")

		Expect(session.ExitCode()).To(Equal(1))
		Expect(session.Err).To(gbytes.Say("error parsing render context: error reading render context file"))
	})

	It("fails when the ssl block has no key", func() {
		session := run("-contextPath", fixture("ssl_without_key_context.yml"))

		Expect(session.ExitCode()).To(Equal(1))
		Expect(session.Err).To(gbytes.Say("missing required configuration: rabbitmq-server.ssl.key"))
		Expect(session.Out.Contents()).To(BeEmpty())
	})
})
