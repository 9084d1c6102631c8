package clusterconfig_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"

	"github.com/MatthiasWinzeler/cf-rabbitmq-release/clusterconfig"
)

var _ = Describe("NodeHash", func() {
	DescribeTable("produces the digests existing clusters are named by",
		func(address, hash string) {
			Expect(clusterconfig.NodeHash(address)).To(Equal(hash))
		},
		Entry("loopback", "127.0.0.1", "f528764d624db129b32c21fbca0cb8d6"),
		Entry("1.1.1.1", "1.1.1.1", "e086aa137fa19f67d27b39d0eca18610"),
		Entry("2.2.2.2", "2.2.2.2", "5b8656aafcb40bb58caf1d17ef8506a9"),
	)
})

var _ = Describe("NewNode", func() {
	It("splits the address into octets", func() {
		node, err := clusterconfig.NewNode("10.0.16.3")
		Expect(err).NotTo(HaveOccurred())

		Expect(node.Octets).To(Equal([4]byte{10, 0, 16, 3}))
		Expect(node.ErlangIP()).To(Equal("{10,0,16,3}"))
		Expect(node.ErlangName()).To(Equal("rabbit@" + clusterconfig.NodeHash("10.0.16.3")))
	})

	DescribeTable("rejects addresses that are not IPv4",
		func(address string) {
			_, err := clusterconfig.NewNode(address)
			Expect(err).To(MatchError(clusterconfig.InvalidAddressError{Address: address}))
		},
		Entry("empty", ""),
		Entry("hostname", "rabbitmq.example.com"),
		Entry("too few octets", "1.1.1"),
		Entry("octet out of range", "1.1.1.256"),
		Entry("IPv6", "fe80::1"),
		Entry("IPv4 mapped IPv6", "::ffff:1.1.1.1"),
	)
})

var _ = Describe("ResolveMembers", func() {
	It("uses the explicit ips over the link instances", func() {
		members, err := clusterconfig.ResolveMembers([]string{"1.1.1.1", "2.2.2.2"}, []string{"9.9.9.9", "8.8.8.8"})
		Expect(err).NotTo(HaveOccurred())

		Expect(members.Source).To(Equal(clusterconfig.ExplicitIPs))
		Expect(members.Addresses()).To(Equal([]string{"1.1.1.1", "2.2.2.2"}))
	})

	It("uses the link instances when there are no explicit ips", func() {
		members, err := clusterconfig.ResolveMembers(nil, []string{"9.9.9.9", "8.8.8.8"})
		Expect(err).NotTo(HaveOccurred())

		Expect(members.Source).To(Equal(clusterconfig.LinkInstances))
		Expect(members.Addresses()).To(Equal([]string{"9.9.9.9", "8.8.8.8"}))
	})

	It("keeps the given order", func() {
		members, err := clusterconfig.ResolveMembers(nil, []string{"3.3.3.3", "1.1.1.1", "2.2.2.2"})
		Expect(err).NotTo(HaveOccurred())

		Expect(members.Addresses()).To(Equal([]string{"3.3.3.3", "1.1.1.1", "2.2.2.2"}))
	})

	Context("when there is a single member", func() {
		It("collapses a single link instance to loopback", func() {
			members, err := clusterconfig.ResolveMembers(nil, []string{"1.1.1.1"})
			Expect(err).NotTo(HaveOccurred())

			Expect(members.Source).To(Equal(clusterconfig.LoopbackSingle))
			Expect(members.Nodes).To(HaveLen(1))
			Expect(members.Nodes[0].Address).To(Equal("127.0.0.1"))
			Expect(members.Nodes[0].Hash).To(Equal("f528764d624db129b32c21fbca0cb8d6"))
		})

		It("collapses a single explicit ip to loopback", func() {
			members, err := clusterconfig.ResolveMembers([]string{"1.1.1.1"}, []string{"9.9.9.9", "8.8.8.8"})
			Expect(err).NotTo(HaveOccurred())

			Expect(members.Source).To(Equal(clusterconfig.LoopbackSingle))
			Expect(members.Addresses()).To(Equal([]string{"127.0.0.1"}))
		})

		It("still rejects an invalid address", func() {
			_, err := clusterconfig.ResolveMembers(nil, []string{"not-an-ip"})
			Expect(err).To(MatchError(clusterconfig.InvalidAddressError{Address: "not-an-ip"}))
		})
	})

	It("fails rather than dropping an invalid member", func() {
		_, err := clusterconfig.ResolveMembers([]string{"1.1.1.1", "1.1.1", "2.2.2.2"}, nil)
		Expect(err).To(MatchError(clusterconfig.InvalidAddressError{Address: "1.1.1"}))
	})

	It("fails when there are no members at all", func() {
		_, err := clusterconfig.ResolveMembers(nil, nil)
		Expect(err).To(BeAssignableToTypeOf(clusterconfig.MissingConfigurationError{}))
	})

	It("describes where the members came from", func() {
		Expect(clusterconfig.ExplicitIPs.String()).To(Equal("rabbitmq-server.ips"))
		Expect(clusterconfig.LinkInstances.String()).To(Equal("rabbitmq-server link"))
		Expect(clusterconfig.LoopbackSingle.String()).To(Equal("loopback"))
	})
})
