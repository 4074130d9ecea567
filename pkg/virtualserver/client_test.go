package virtualserver

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	apierrors "k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/apimachinery/pkg/api/resource"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/client/fake"

	vsv1alpha1 "github.com/outerbounds/vsctl/api/v1alpha1"
)

func testManifest(name, namespace string) *vsv1alpha1.VirtualServer {
	vs, err := NewBuilder(name, namespace).
		CPU(8, "").
		GPU("A100_PCIE_80GB", 1).
		Memory(resource.MustParse("32Gi")).
		RootDisk(resource.MustParse("300Gi")).
		User("eddie", "ssh-ed25519 AAAA test").
		Build()
	Expect(err).NotTo(HaveOccurred())
	return vs
}

var _ = Describe("VirtualServer client", func() {
	const namespace = "tenant-abc"

	var (
		raw client.WithWatch
		c   *Client
		ctx context.Context
	)

	BeforeEach(func() {
		raw = fake.NewClientBuilder().
			WithScheme(NewScheme()).
			WithStatusSubresource(&vsv1alpha1.VirtualServer{}).
			Build()
		c = NewClientFor(raw)
		ctx = context.Background()
	})

	Describe("Create", func() {
		It("should submit a valid manifest and fetch it back", func() {
			vs := testManifest("vs-a100", namespace)
			Expect(c.Create(ctx, vs)).To(Succeed())

			got, err := c.Get(ctx, namespace, "vs-a100")
			Expect(err).NotTo(HaveOccurred())
			Expect(got.Spec.Resources.GPU.Type).To(Equal("A100_PCIE_80GB"))
			Expect(got.Spec.Storage.Root.Size.String()).To(Equal("300Gi"))
		})

		It("should reject an invalid manifest before touching the API server", func() {
			vs := testManifest("vs-bad", namespace)
			vs.Spec.Resources.CPU.Count = 0

			err := c.Create(ctx, vs)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("cpu.count"))

			_, err = c.Get(ctx, namespace, "vs-bad")
			Expect(apierrors.IsNotFound(err)).To(BeTrue())
		})

		It("should surface AlreadyExists without retrying", func() {
			vs := testManifest("vs-a100", namespace)
			Expect(c.Create(ctx, vs)).To(Succeed())

			again := testManifest("vs-a100", namespace)
			err := c.Create(ctx, again)
			Expect(apierrors.IsAlreadyExists(err)).To(BeTrue())
		})
	})

	Describe("Get", func() {
		It("should return NotFound for an absent VirtualServer", func() {
			_, err := c.Get(ctx, namespace, "missing")
			Expect(apierrors.IsNotFound(err)).To(BeTrue())
		})
	})

	Describe("List", func() {
		It("should only return the namespace's VirtualServers", func() {
			Expect(c.Create(ctx, testManifest("vs-1", namespace))).To(Succeed())
			Expect(c.Create(ctx, testManifest("vs-2", namespace))).To(Succeed())
			Expect(c.Create(ctx, testManifest("vs-3", "other-tenant"))).To(Succeed())

			list, err := c.List(ctx, namespace)
			Expect(err).NotTo(HaveOccurred())
			Expect(list.Items).To(HaveLen(2))
		})
	})

	Describe("Update", func() {
		It("should persist spec changes", func() {
			vs := testManifest("vs-a100", namespace)
			Expect(c.Create(ctx, vs)).To(Succeed())

			vs.Spec.Resources.GPU.Count = 4
			Expect(c.Update(ctx, vs)).To(Succeed())

			got, err := c.Get(ctx, namespace, "vs-a100")
			Expect(err).NotTo(HaveOccurred())
			Expect(got.Spec.Resources.GPU.Count).To(Equal(4))
		})

		It("should reject updates that break the schema", func() {
			vs := testManifest("vs-a100", namespace)
			Expect(c.Create(ctx, vs)).To(Succeed())

			vs.Spec.Resources.Memory = resource.Quantity{}
			err := c.Update(ctx, vs)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("memory is required"))
		})
	})

	Describe("Delete", func() {
		It("should remove the VirtualServer", func() {
			Expect(c.Create(ctx, testManifest("vs-a100", namespace))).To(Succeed())
			Expect(c.Delete(ctx, namespace, "vs-a100")).To(Succeed())

			_, err := c.Get(ctx, namespace, "vs-a100")
			Expect(apierrors.IsNotFound(err)).To(BeTrue())
		})

		It("should surface NotFound for an absent VirtualServer", func() {
			err := c.Delete(ctx, namespace, "missing")
			Expect(apierrors.IsNotFound(err)).To(BeTrue())
		})
	})

	Describe("WaitFor", func() {
		setPhase := func(name string, phase vsv1alpha1.Phase, externalIP string) {
			var vs vsv1alpha1.VirtualServer
			Expect(raw.Get(ctx, client.ObjectKey{Name: name, Namespace: namespace}, &vs)).To(Succeed())
			vsv1alpha1.SetPhase(&vs, phase, "")
			vs.Status.Network.ExternalIP = externalIP
			Expect(raw.Status().Update(ctx, &vs)).To(Succeed())
		}

		It("should return immediately when the instance is already ready", func() {
			Expect(c.Create(ctx, testManifest("vs-a100", namespace))).To(Succeed())
			setPhase("vs-a100", vsv1alpha1.PhaseReady, "203.0.113.7")

			waitCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			defer cancel()

			result, err := c.WaitFor(waitCtx, namespace, "vs-a100", vsv1alpha1.PhaseReady)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Phase).To(Equal(vsv1alpha1.PhaseReady))
			Expect(result.ExternalIP).To(Equal("203.0.113.7"))
		})

		It("should observe the transition to ready", func() {
			Expect(c.Create(ctx, testManifest("vs-a100", namespace))).To(Succeed())

			waitCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			defer cancel()

			done := make(chan *WaitResult, 1)
			go func() {
				defer GinkgoRecover()
				result, err := c.WaitFor(waitCtx, namespace, "vs-a100", vsv1alpha1.PhaseReady)
				Expect(err).NotTo(HaveOccurred())
				done <- result
			}()

			time.Sleep(100 * time.Millisecond)
			setPhase("vs-a100", vsv1alpha1.PhaseReady, "203.0.113.7")

			Eventually(done, "5s").Should(Receive(HaveField("ExternalIP", "203.0.113.7")))
		})

		It("should stop waiting for ready when the instance is stopped", func() {
			Expect(c.Create(ctx, testManifest("vs-a100", namespace))).To(Succeed())
			setPhase("vs-a100", vsv1alpha1.PhaseStopped, "")

			waitCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			defer cancel()

			result, err := c.WaitFor(waitCtx, namespace, "vs-a100", vsv1alpha1.PhaseReady)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Phase).To(Equal(vsv1alpha1.PhaseStopped))
			Expect(result.ExternalIP).To(BeEmpty())
		})

		It("should report deletion of the watched instance", func() {
			Expect(c.Create(ctx, testManifest("vs-a100", namespace))).To(Succeed())

			waitCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			defer cancel()

			done := make(chan *WaitResult, 1)
			go func() {
				defer GinkgoRecover()
				result, err := c.WaitFor(waitCtx, namespace, "vs-a100", vsv1alpha1.PhaseReady)
				Expect(err).NotTo(HaveOccurred())
				done <- result
			}()

			time.Sleep(100 * time.Millisecond)
			Expect(c.Delete(ctx, namespace, "vs-a100")).To(Succeed())

			Eventually(done, "5s").Should(Receive(HaveField("Phase", vsv1alpha1.PhaseDeleted)))
		})

		It("should wait for stopped when asked to", func() {
			Expect(c.Create(ctx, testManifest("vs-a100", namespace))).To(Succeed())

			waitCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			defer cancel()

			done := make(chan *WaitResult, 1)
			go func() {
				defer GinkgoRecover()
				result, err := c.WaitFor(waitCtx, namespace, "vs-a100", vsv1alpha1.PhaseStopped)
				Expect(err).NotTo(HaveOccurred())
				done <- result
			}()

			time.Sleep(100 * time.Millisecond)
			// A ready report must not satisfy a wait for stopped.
			setPhase("vs-a100", vsv1alpha1.PhaseReady, "203.0.113.7")
			time.Sleep(100 * time.Millisecond)
			setPhase("vs-a100", vsv1alpha1.PhaseStopped, "")

			Eventually(done, "5s").Should(Receive(HaveField("Phase", vsv1alpha1.PhaseStopped)))
		})
	})
})
