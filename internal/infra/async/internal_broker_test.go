package async_test

import (
	"context"

	"cellar-server/internal/infra/async"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Local Broker", func() {
	var broker *async.LocalBroker
	var topic async.BrokerTopicName
	var subscription async.Subscription
	var ctx context.Context

	BeforeEach(func() {
		broker = async.NewLocalBroker()
		ctx = context.TODO()
	})

	Context("Subscribe", func() {
		When("a subscriber is registered for a topic", func() {
			BeforeEach(func() {
				topic = "schema-events"
			})

			It("should deliver published messages", func() {
				subscription, _ = broker.Subscribe(topic)

				broker.Publish(ctx, topic, async.BrokerMessage{Event: "field_created"})

				Eventually(subscription.Receiver).Should(Receive(HaveField("Event", "field_created")))
			})
		})

		When("multiple subscribers share a topic", func() {
			var subscription2 async.Subscription

			BeforeEach(func() {
				topic = "schema-events"
			})

			It("should deliver to every subscriber", func() {
				subscription, _ = broker.Subscribe(topic)
				subscription2, _ = broker.Subscribe(topic)

				broker.Publish(ctx, topic, async.BrokerMessage{Event: "field_deleted"})

				Eventually(subscription.Receiver).Should(Receive(HaveField("Event", "field_deleted")))
				Eventually(subscription2.Receiver).Should(Receive(HaveField("Event", "field_deleted")))
			})
		})
	})

	Context("Unsubscribe", func() {
		When("the topic was never subscribed", func() {
			It("should report the missing topic", func() {
				err := broker.Unsubscribe("unknown", async.Subscription{ID: "missing"})

				Expect(err).Should(MatchError(async.ErrTopicNotFound))
			})
		})

		When("the subscription does not exist", func() {
			BeforeEach(func() {
				topic = "schema-events"
				broker.Subscribe(topic)
			})

			It("should report the missing subscriptor", func() {
				err := broker.Unsubscribe(topic, async.Subscription{ID: "missing"})

				Expect(err).Should(MatchError(async.ErrSubscriptorNotFound))
			})
		})

		When("called twice for the same subscription", func() {
			BeforeEach(func() {
				topic = "schema-events"
				subscription, _ = broker.Subscribe(topic)
				broker.Unsubscribe(topic, subscription)
			})

			It("should not panic", func() {
				err := broker.Unsubscribe(topic, subscription)

				Expect(err).Should(Succeed())
			})
		})
	})

	Context("Publish", func() {
		When("the topic has no subscribers at all", func() {
			It("should return an error", func() {
				err := broker.Publish(ctx, "unknown", async.BrokerMessage{})

				Expect(err).ShouldNot(Succeed())
			})
		})

		When("a subscriber leaves while messages are in flight", func() {
			BeforeEach(func() {
				topic = "schema-events"
				subscription, _ = broker.Subscribe(topic)
			})

			It("should never send on the closed receiver", func() {
				done := make(chan struct{})
				go func() {
					defer GinkgoRecover()
					defer close(done)
					for i := 0; i < 100; i++ {
						broker.Publish(ctx, topic, async.BrokerMessage{Event: "field_updated"})
					}
				}()
				go func() {
					defer GinkgoRecover()
					for range subscription.Receiver {
					}
				}()

				broker.Unsubscribe(topic, subscription)

				Eventually(done).Should(BeClosed())
			})
		})

		When("the only subscriber already unsubscribed", func() {
			BeforeEach(func() {
				topic = "schema-events"
				subscription, _ = broker.Subscribe(topic)
				broker.Unsubscribe(topic, subscription)
			})

			It("should return no error", func() {
				err := broker.Publish(ctx, topic, async.BrokerMessage{})

				Expect(err).Should(Succeed())
			})
		})
	})
})
