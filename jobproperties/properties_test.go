package jobproperties_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/MatthiasWinzeler/cf-rabbitmq-release/jobproperties"
)

var _ = Describe("Links", func() {
	It("returns the instance addresses of a link in order", func() {
		links := jobproperties.Links{
			"rabbitmq-server": jobproperties.Link{
				Instances: []jobproperties.LinkInstance{
					{Address: "2.2.2.2"},
					{Address: "1.1.1.1"},
				},
			},
		}

		Expect(links.Addresses(jobproperties.RabbitMQServerLink)).To(Equal([]string{"2.2.2.2", "1.1.1.1"}))
	})

	It("returns nothing for a link that was not provided", func() {
		Expect(jobproperties.Links{}.Addresses("rabbitmq-server")).To(BeEmpty())
	})
})

var _ = Describe("Networks", func() {
	It("returns the ip of the default network", func() {
		networks := jobproperties.Networks{
			"services": {IP: "10.0.0.2"},
			"default":  {IP: "10.0.1.2", Default: true},
		}

		Expect(networks.DefaultIP()).To(Equal("10.0.1.2"))
	})

	It("falls back to the only network when none is flagged", func() {
		networks := jobproperties.Networks{"services": {IP: "10.0.0.2"}}

		Expect(networks.DefaultIP()).To(Equal("10.0.0.2"))
	})

	It("returns empty when there are several networks and no default", func() {
		networks := jobproperties.Networks{
			"a": {IP: "10.0.0.2"},
			"b": {IP: "10.0.1.2"},
		}

		Expect(networks.DefaultIP()).To(BeEmpty())
	})
})

var _ = Describe("SSL", func() {
	It("knows which security options are set", func() {
		ssl := jobproperties.SSL{SecurityOptions: []string{"enable_tls1_0"}}

		Expect(ssl.HasSecurityOption("enable_tls1_0")).To(BeTrue())
		Expect(ssl.HasSecurityOption("something_else")).To(BeFalse())
	})
})
