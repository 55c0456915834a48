package platform

import (
	"errors"
	"fmt"
	"hash/fnv"
	"net"
	"path/filepath"
)

// ErrAlreadyRunning indicates another process already owns the data directory.
var ErrAlreadyRunning = errors.New("another timer is using this data directory")

// InstanceLock keeps a second process from writing the same settings store.
type InstanceLock struct {
	listener net.Listener
	address  string
}

// LockDataDir binds a loopback port derived from dataDir. Only one process per
// data directory can hold it; it is released automatically when the process exits.
func LockDataDir(dataDir string) (*InstanceLock, error) {
	absolute, err := filepath.Abs(dataDir)
	if err != nil {
		absolute = dataDir
	}
	address := fmt.Sprintf("127.0.0.1:%d", lockPort(absolute))
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return nil, fmt.Errorf("lock %s: %w", absolute, ErrAlreadyRunning)
	}
	return &InstanceLock{listener: listener, address: address}, nil
}

// Release frees the lock.
func (lock *InstanceLock) Release() error {
	if lock == nil || lock.listener == nil {
		return nil
	}
	err := lock.listener.Close()
	lock.listener = nil
	return err
}

// Address returns the bound loopback address.
func (lock *InstanceLock) Address() string {
	if lock == nil {
		return ""
	}
	return lock.address
}

func lockPort(key string) int {
	const (
		minPort = 20000
		maxPort = 39999
	)
	hash := fnv.New32a()
	_, _ = hash.Write([]byte(key))
	return minPort + int(hash.Sum32()%uint32(maxPort-minPort+1))
}
