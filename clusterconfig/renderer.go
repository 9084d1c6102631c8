package clusterconfig

import (
	"fmt"
	"strings"

	"github.com/MatthiasWinzeler/cf-rabbitmq-release/jobproperties"
)

const (
	clustererConfigArg = `-rabbitmq_clusterer config \"${CLUSTER_CONFIG}\"`
	certDir            = "${SCRIPT_DIR}/../etc"
)

type RenderedConfig struct {
	Members         Members
	Settings        Settings
	NodeName        string
	Hosts           []string
	ServerStartArgs string
	SSLOptions      string
}

func Render(manifest jobproperties.Manifest, links jobproperties.Links, networks jobproperties.Networks) (RenderedConfig, error) {
	props := manifest.RabbitMQServer

	members, err := ResolveMembers(props.IPs, links.Addresses(jobproperties.RabbitMQServerLink))
	if err != nil {
		return RenderedConfig{}, err
	}

	settings, err := NewSettings(props)
	if err != nil {
		return RenderedConfig{}, err
	}

	name, err := nodeName(members, networks)
	if err != nil {
		return RenderedConfig{}, err
	}

	rendered := RenderedConfig{
		Members:         members,
		Settings:        settings,
		NodeName:        name,
		Hosts:           hostLines(members),
		ServerStartArgs: serverStartArgs(members, settings),
	}

	if settings.SSL != nil {
		rendered.SSLOptions = sslOptions(*settings.SSL)
	}

	return rendered, nil
}

func nodeName(members Members, networks jobproperties.Networks) (string, error) {
	if members.Source == LoopbackSingle {
		return members.Nodes[0].ErlangName(), nil
	}

	ip := networks.DefaultIP()
	if ip == "" {
		return "", nil
	}

	node, err := NewNode(ip)
	if err != nil {
		return "", err
	}
	return node.ErlangName(), nil
}

func hostLines(members Members) []string {
	lines := make([]string, 0, len(members.Nodes))
	for _, node := range members.Nodes {
		lines = append(lines, fmt.Sprintf(`HOSTS="${HOSTS}{host, %s, [\"%s\"]}.\n"`, node.ErlangIP(), node.Hash))
	}
	return lines
}

func serverStartArgs(members Members, settings Settings) string {
	clustering := clustererConfigArg
	if settings.NativeClustering {
		clustering = clusterNodesArg(members)
	}

	args := []string{
		clustering,
		"-rabbit log_levels [{connection,info}]",
		"-rabbit disk_free_limit " + settings.DiskFreeLimit,
		"-rabbit cluster_partition_handling " + settings.PartitionHandling,
		"-rabbit halt_on_upgrade_failure false",
		"-rabbitmq_mqtt subscription_ttl 1800000",
	}
	return strings.Join(args, " ")
}

func clusterNodesArg(members Members) string {
	names := make([]string, 0, len(members.Nodes))
	for _, node := range members.Nodes {
		names = append(names, node.ErlangName())
	}
	return fmt.Sprintf("-rabbit cluster_nodes {[%s],disc}", strings.Join(names, ","))
}

func sslOptions(ssl SSLSettings) string {
	verify := "verify_none"
	if ssl.Verify {
		verify = "verify_peer"
	}

	options := []string{
		sslFileOption("cacertfile", "cacert.pem"),
		sslFileOption("certfile", "cert.pem"),
		sslFileOption("keyfile", "key.pem"),
		fmt.Sprintf("{verify,%s}", verify),
		fmt.Sprintf("{depth,%d}", ssl.Depth),
		fmt.Sprintf("{fail_if_no_peer_cert,%t}", ssl.FailIfNoPeerCert),
		fmt.Sprintf("{versions,[%s]}", strings.Join(ssl.Versions, ",")),
	}
	return fmt.Sprintf(" -rabbit ssl_options [%s]", strings.Join(options, ","))
}

// The file path ends up inside a double quoted shell string that is itself
// passed through a second round of quoting by the start script.
func sslFileOption(name, file string) string {
	return fmt.Sprintf(`{%s,\\\"%s/%s\\\"}`, name, certDir, file)
}
