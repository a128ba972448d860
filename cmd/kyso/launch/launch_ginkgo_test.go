package launch

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"

	"github.com/kyso-io/kyso-launcher/cmd/kyso/cmdutil"
	kerrors "github.com/kyso-io/kyso-launcher/internal/errors"
	"github.com/kyso-io/kyso-launcher/internal/launcher"
	"github.com/kyso-io/kyso-launcher/internal/platform"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Launch command", func() {
	var (
		dir    string
		stdout *bytes.Buffer
	)

	execute := func(args ...string) error {
		return Execute(context.Background(), args,
			launcher.WithDir(dir),
			launcher.WithStdio(bytes.NewReader(nil), stdout, io.Discard))
	}

	received := func() []string {
		var got []string
		Expect(json.Unmarshal(stdout.Bytes(), &got)).To(Succeed())
		return got
	}

	BeforeEach(func() {
		stdout = &bytes.Buffer{}
		dir = GinkgoT().TempDir()
	})

	Context("with the kyso binary installed", func() {
		BeforeEach(func() {
			name, ok := launcher.BinaryName(platform.Current())
			if !ok {
				Skip("no kyso binary for " + platform.Current().String())
			}

			self, err := os.Executable()
			Expect(err).NotTo(HaveOccurred())
			data, err := os.ReadFile(self)
			Expect(err).NotTo(HaveOccurred())
			Expect(os.WriteFile(filepath.Join(dir, name), data, 0755)).To(Succeed())

			GinkgoT().Setenv(childEnv, "1")
		})

		It("forwards arguments unchanged", func() {
			Expect(execute("build", "--flag", "value with spaces")).To(Succeed())
			Expect(received()).To(Equal([]string{"build", "--flag", "value with spaces"}))
		})

		It("does not interpret help or version flags", func() {
			Expect(execute("--help", "-h", "--version")).To(Succeed())
			Expect(received()).To(Equal([]string{"--help", "-h", "--version"}))
		})

		It("forwards words cobra reserves for completion", func() {
			Expect(execute("__complete", "studies", "")).To(Succeed())
			Expect(received()).To(Equal([]string{"__complete", "studies", ""}))

			stdout.Reset()
			Expect(execute("__completeNoDesc")).To(Succeed())
			Expect(received()).To(Equal([]string{"__completeNoDesc"}))
		})

		It("does not treat words as subcommands", func() {
			Expect(execute("help", "completion")).To(Succeed())
			Expect(received()).To(Equal([]string{"help", "completion"}))

			stdout.Reset()
			Expect(execute("completion", "bash")).To(Succeed())
			Expect(received()).To(Equal([]string{"completion", "bash"}))
		})

		It("runs the binary with no arguments", func() {
			Expect(execute()).To(Succeed())
			Expect(received()).To(BeEmpty())
		})

		DescribeTable("passes the exit code through",
			func(code string, expected int) {
				err := execute("exit", code)
				Expect(cmdutil.ExitCode(err)).To(Equal(expected))
				if expected != 0 {
					var exitErr *cmdutil.ExitError
					Expect(err).To(BeAssignableToTypeOf(exitErr))
				}
			},
			Entry("success", "0", 0),
			Entry("failure", "1", 1),
			Entry("custom", "42", 42),
			Entry("maximum", "255", 255),
		)
	})

	Context("without the kyso binary", func() {
		It("reports a launch failure", func() {
			if _, ok := launcher.BinaryName(platform.Current()); !ok {
				Skip("no kyso binary for " + platform.Current().String())
			}

			err := execute("login")
			Expect(err).To(MatchError(kerrors.ErrLaunchFailed))
			Expect(kerrors.CodeOf(err)).To(Equal(kerrors.CodeLaunchFailed))
			Expect(cmdutil.ExitCode(err)).To(Equal(1))
			Expect(stdout.String()).To(BeEmpty())
		})
	})

	Context("on an unsupported platform", func() {
		It("fails before spawning anything", func() {
			err := Execute(context.Background(), []string{"login"},
				launcher.WithDir(dir),
				launcher.WithPlatform("plan9"),
				launcher.WithStdio(nil, stdout, io.Discard))

			Expect(err).To(MatchError(kerrors.ErrUnsupportedPlatform))
			Expect(cmdutil.ExitCode(err)).To(Equal(1))
			Expect(stdout.String()).To(BeEmpty())
		})
	})

	It("takes no flags of its own", func() {
		cmd := NewLaunchCmd()
		Expect(cmd.DisableFlagParsing).To(BeTrue())
		Expect(cmd.HasSubCommands()).To(BeFalse())
		Expect(cmd.CompletionOptions.DisableDefaultCmd).To(BeTrue())
		Expect(cmd.Annotations).To(HaveKey("version"))
	})
})
