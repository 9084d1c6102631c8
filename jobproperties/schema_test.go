package jobproperties_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"gopkg.in/yaml.v2"

	"github.com/MatthiasWinzeler/cf-rabbitmq-release/jobproperties"
)

var _ = Describe("ParseManifest", func() {
	var (
		rawYAML  string
		manifest jobproperties.Manifest
		parseErr error
	)

	JustBeforeEach(func() {
		var raw interface{}
		Expect(yaml.Unmarshal([]byte(rawYAML), &raw)).To(Succeed())
		manifest, parseErr = jobproperties.ParseManifest(raw)
	})

	Context("when all properties are set", func() {
		BeforeEach(func() {
			rawYAML = `
rabbitmq-server:
  ips: [1.1.1.1, 2.2.2.2]
  use_native_clustering_formation: true
  cluster_partition_handling: autoheal
  disk_alarm_threshold: 20000000
  ssl:
    key: rabbitmq-ssl-key
    cert: rabbitmq-ssl-cert
    cacert: rabbitmq-ssl-cacert
    security_options: [enable_tls1_0]
    verify: true
    verification_depth: 3
    fail_if_no_peer_cert: true
`
		})

		It("decodes them", func() {
			Expect(parseErr).NotTo(HaveOccurred())
			Expect(manifest).To(Equal(jobproperties.Manifest{
				RabbitMQServer: jobproperties.RabbitMQServer{
					IPs:                          []string{"1.1.1.1", "2.2.2.2"},
					UseNativeClusteringFormation: true,
					ClusterPartitionHandling:     "autoheal",
					DiskAlarmThreshold:           "20000000",
					SSL: &jobproperties.SSL{
						Key:               "rabbitmq-ssl-key",
						Cert:              "rabbitmq-ssl-cert",
						CACert:            "rabbitmq-ssl-cacert",
						SecurityOptions:   []string{"enable_tls1_0"},
						Verify:            true,
						VerificationDepth: 3,
						FailIfNoPeerCert:  true,
					},
				},
			}))
		})
	})

	Context("when the property bag is empty", func() {
		BeforeEach(func() {
			rawYAML = ``
		})

		It("returns an empty manifest", func() {
			Expect(parseErr).NotTo(HaveOccurred())
			Expect(manifest).To(Equal(jobproperties.Manifest{}))
		})
	})

	Context("when there is no ssl block", func() {
		BeforeEach(func() {
			rawYAML = `
rabbitmq-server:
  cluster_partition_handling: pause_minority
`
		})

		It("leaves ssl unset", func() {
			Expect(parseErr).NotTo(HaveOccurred())
			Expect(manifest.RabbitMQServer.SSL).To(BeNil())
		})
	})

	Context("when ips is not a list", func() {
		BeforeEach(func() {
			rawYAML = `
rabbitmq-server:
  ips: 1.1.1.1
`
		})

		It("returns a validation error", func() {
			Expect(parseErr).To(MatchError(ContainSubstring("manifest properties failed validation")))
			Expect(parseErr).To(MatchError(ContainSubstring("ips")))
		})
	})

	Context("when use_native_clustering_formation is not a boolean", func() {
		BeforeEach(func() {
			rawYAML = `
rabbitmq-server:
  use_native_clustering_formation: maybe
`
		})

		It("returns a validation error", func() {
			Expect(parseErr).To(MatchError(ContainSubstring("use_native_clustering_formation")))
		})
	})

	Context("when cluster_partition_handling contains a single quote", func() {
		BeforeEach(func() {
			rawYAML = `
rabbitmq-server:
  cluster_partition_handling: "autoheal' -eval 'halt()"
`
		})

		It("returns a validation error", func() {
			Expect(parseErr).To(MatchError(ContainSubstring("manifest properties failed validation")))
			Expect(parseErr).To(MatchError(ContainSubstring("cluster_partition_handling")))
		})
	})

	Context("when a property key is not a string", func() {
		BeforeEach(func() {
			rawYAML = `
rabbitmq-server:
  1: one
`
		})

		It("returns an error", func() {
			Expect(parseErr).To(MatchError("manifest property key 1 is not a string"))
		})
	})
})
