package artifact

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/sirupsen/logrus"
)

// IPFSPublisher submits certificate files to a content-addressed storage
// network by shelling out to an external publisher binary (ipfs add -Q).
// The storage root is handed to the subprocess via the IPFS_PATH env var.
type IPFSPublisher struct {
	logger      *logrus.Logger
	command     string
	storageRoot string
}

func NewIPFSPublisher(logger *logrus.Logger, command, storageRoot string) *IPFSPublisher {
	return &IPFSPublisher{
		logger:      logger,
		command:     command,
		storageRoot: storageRoot,
	}
}

// Publish adds the file at path to the network and returns the content
// identifier reported on the publisher's standard output.
func (p *IPFSPublisher) Publish(ctx context.Context, path string) (string, error) {
	cmd := exec.CommandContext(ctx, p.command, "add", "-Q", path)
	cmd.Env = append(os.Environ(), "IPFS_PATH="+p.storageRoot)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	p.logger.WithFields(logrus.Fields{
		"command": p.command,
		"path":    path,
	}).Debug("Invoking content-addressed publisher")

	err := cmd.Run()
	if err != nil {
		return "", fmt.Errorf("run publisher %q: %w: %s", p.command, err, strings.TrimSpace(stderr.String()))
	}

	cid := strings.TrimSpace(stdout.String())
	if cid == "" {
		return "", errors.New("publisher exited cleanly but reported no content identifier")
	}

	return cid, nil
}
