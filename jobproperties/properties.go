package jobproperties

import "sort"

// RabbitMQServerLink is the name of the link the rabbitmq-server job both
// provides and consumes to discover its peers.
const RabbitMQServerLink = "rabbitmq-server"

type Manifest struct {
	RabbitMQServer RabbitMQServer `yaml:"rabbitmq-server"`
}

type RabbitMQServer struct {
	IPs                          []string `yaml:"ips"`
	UseNativeClusteringFormation bool     `yaml:"use_native_clustering_formation"`
	ClusterPartitionHandling     string   `yaml:"cluster_partition_handling"`
	DiskAlarmThreshold           string   `yaml:"disk_alarm_threshold"`
	SSL                          *SSL     `yaml:"ssl"`
}

type SSL struct {
	Key               string   `yaml:"key"`
	Cert              string   `yaml:"cert"`
	CACert            string   `yaml:"cacert"`
	SecurityOptions   []string `yaml:"security_options"`
	Verify            bool     `yaml:"verify"`
	VerificationDepth int      `yaml:"verification_depth"`
	FailIfNoPeerCert  bool     `yaml:"fail_if_no_peer_cert"`
}

func (s SSL) HasSecurityOption(option string) bool {
	for _, o := range s.SecurityOptions {
		if o == option {
			return true
		}
	}
	return false
}

type Links map[string]Link

type Link struct {
	Instances []LinkInstance `yaml:"instances"`
}

type LinkInstance struct {
	Address string `yaml:"address"`
}

// Addresses returns the instance addresses of the named link in the order
// the director reported them.
func (l Links) Addresses(name string) []string {
	link, found := l[name]
	if !found {
		return nil
	}

	var addresses []string
	for _, instance := range link.Instances {
		addresses = append(addresses, instance.Address)
	}
	return addresses
}

type Networks map[string]Network

type Network struct {
	IP      string `yaml:"ip"`
	Default bool   `yaml:"default"`
}

// DefaultIP returns the IP of the network flagged as default. With no
// default flag set it falls back to the only network, if there is just one.
func (n Networks) DefaultIP() string {
	var names []string
	for name := range n {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if n[name].Default {
			return n[name].IP
		}
	}

	if len(names) == 1 {
		return n[names[0]].IP
	}
	return ""
}
