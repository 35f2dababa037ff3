package netinfo

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeResolver struct {
	hosts   []string
	hostErr error
	names   []string
	nameErr error
}

func (f *fakeResolver) LookupHost(ctx context.Context, host string) ([]string, error) {
	return f.hosts, f.hostErr
}

func (f *fakeResolver) LookupAddr(ctx context.Context, addr string) ([]string, error) {
	return f.names, f.nameErr
}

func TestResolve(t *testing.T) {
	r := &fakeResolver{
		hosts: []string{"192.168.1.10"},
		names: []string{"box.example.com."},
	}

	info := resolve("box", nil, r)

	assert.Equal(t, "box", info.Hostname)
	assert.Equal(t, "192.168.1.10", info.IPAddress)
	assert.Equal(t, "box.example.com", info.FQDN)
}

func TestResolveHostnameError(t *testing.T) {
	r := &fakeResolver{hosts: []string{"192.168.1.10"}}

	info := resolve("", errors.New("hostname unavailable"), r)

	assert.Equal(t, Info{}, info)
}

func TestResolveLookupError(t *testing.T) {
	r := &fakeResolver{hostErr: errors.New("name service unreachable")}

	info := resolve("box", nil, r)

	// Failure must never leave a partial mix of resolved fields.
	assert.Equal(t, Info{}, info)
}

func TestResolveFQDNEqualsHostname(t *testing.T) {
	r := &fakeResolver{
		hosts: []string{"127.0.1.1"},
		names: []string{"box."},
	}

	info := resolve("box", nil, r)

	assert.Equal(t, "box", info.Hostname)
	assert.Empty(t, info.FQDN)
}

func TestResolveReverseLookupError(t *testing.T) {
	r := &fakeResolver{
		hosts:   []string{"192.168.1.10"},
		nameErr: errors.New("no PTR record"),
	}

	info := resolve("box", nil, r)

	assert.Equal(t, "box", info.Hostname)
	assert.Equal(t, "192.168.1.10", info.IPAddress)
	assert.Empty(t, info.FQDN)
}

func TestGetMemoized(t *testing.T) {
	first := Get()
	second := Get()

	assert.Equal(t, first, second)
}
