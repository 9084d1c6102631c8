package clusterconfig

import (
	"strings"

	"github.com/MatthiasWinzeler/cf-rabbitmq-release/jobproperties"
)

const (
	DefaultPartitionHandling = "pause_minority"
	DefaultDiskFreeLimit     = "{mem_relative,0.4}"
	DefaultVerificationDepth = 5

	EnableTLS10 = "enable_tls1_0"
)

var defaultTLSVersions = []string{"'tlsv1.2'", "'tlsv1.1'"}

type Settings struct {
	NativeClustering  bool
	PartitionHandling string
	DiskFreeLimit     string
	SSL               *SSLSettings
}

type SSLSettings struct {
	Versions         []string
	Verify           bool
	Depth            int
	FailIfNoPeerCert bool
}

// NewSettings applies defaults to the manifest properties. Partition
// handling policies are not checked against known ones so new RabbitMQ
// policies can be used without a release.
func NewSettings(props jobproperties.RabbitMQServer) (Settings, error) {
	settings := Settings{
		NativeClustering:  props.UseNativeClusteringFormation,
		PartitionHandling: DefaultPartitionHandling,
		DiskFreeLimit:     DefaultDiskFreeLimit,
	}

	if props.ClusterPartitionHandling != "" {
		settings.PartitionHandling = props.ClusterPartitionHandling
	}

	if props.DiskAlarmThreshold != "" {
		settings.DiskFreeLimit = props.DiskAlarmThreshold
	}

	if err := checkQuotable("rabbitmq-server.cluster_partition_handling", settings.PartitionHandling); err != nil {
		return Settings{}, err
	}
	if err := checkQuotable("rabbitmq-server.disk_alarm_threshold", settings.DiskFreeLimit); err != nil {
		return Settings{}, err
	}

	if props.SSL != nil {
		sslSettings, err := newSSLSettings(*props.SSL)
		if err != nil {
			return Settings{}, err
		}
		settings.SSL = &sslSettings
	}

	return settings, nil
}

func checkQuotable(property, value string) error {
	if strings.Contains(value, "'") {
		return InvalidPropertyError{Property: property, Value: value}
	}
	return nil
}

func newSSLSettings(ssl jobproperties.SSL) (SSLSettings, error) {
	if ssl.Key == "" {
		return SSLSettings{}, MissingConfigurationError{Property: "rabbitmq-server.ssl.key"}
	}

	versions := append([]string{}, defaultTLSVersions...)
	if ssl.HasSecurityOption(EnableTLS10) {
		versions = append(versions, "tlsv1")
	}

	depth := DefaultVerificationDepth
	if ssl.VerificationDepth > 0 {
		depth = ssl.VerificationDepth
	}

	return SSLSettings{
		Versions:         versions,
		Verify:           ssl.Verify,
		Depth:            depth,
		FailIfNoPeerCert: ssl.FailIfNoPeerCert,
	}, nil
}
