// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package network

import (
	"crypto/ecdsa"
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"

	"github.com/ethereum/go-ethereum/crypto"
)

var (
	errPortOutOfRange = errors.New("port is out of range")
	errHostNotIP      = errors.New("host is not an IP address")
	errMissingPort    = errors.New("port is missing")
)

// generateKey generates a new secp256k1 private key and,
// if the base path is not empty, saves it to the key file.
func generateKey(basePath string) (*ecdsa.PrivateKey, error) {
	key, err := crypto.GenerateKey()
	if err != nil {
		return nil, fmt.Errorf("generating key: %w", err)
	}

	if basePath == "" {
		return key, nil
	}

	err = os.MkdirAll(basePath, os.ModePerm)
	if err != nil {
		return nil, fmt.Errorf("creating base path: %w", err)
	}

	err = crypto.SaveECDSA(filepath.Join(basePath, DefaultKeyFile), key)
	if err != nil {
		return nil, fmt.Errorf("saving key: %w", err)
	}

	return key, nil
}

// loadKey loads the private key from the key file in the base path.
// It returns a nil key if the key file does not exist.
func loadKey(basePath string) (*ecdsa.PrivateKey, error) {
	fp := filepath.Join(basePath, DefaultKeyFile)
	_, err := os.Stat(fp)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil //nolint:nilnil
	} else if err != nil {
		return nil, err
	}

	key, err := crypto.LoadECDSA(fp)
	if err != nil {
		return nil, fmt.Errorf("loading key from %s: %w", fp, err)
	}
	return key, nil
}

func parsePort(s string) (port int, err error) {
	if s == "" {
		return 0, errMissingPort
	}

	port, err = strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("parsing port: %w", err)
	}

	if port < 0 || port > 65535 {
		return 0, fmt.Errorf("%w: %d", errPortOutOfRange, port)
	}
	return port, nil
}

// checkListenAddress checks the address is of the form [ip]:port.
func checkListenAddress(address string) error {
	host, portString, err := net.SplitHostPort(address)
	if err != nil {
		return err
	}

	if host != "" && net.ParseIP(host) == nil {
		return fmt.Errorf("%w: %s", errHostNotIP, host)
	}

	_, err = parsePort(portString)
	return err
}

// parsePublicAddress parses an address of the form ip:port.
// The port cannot be 0 since peers must be able to dial it.
func parsePublicAddress(address string) (*net.TCPAddr, error) {
	host, portString, err := net.SplitHostPort(address)
	if err != nil {
		return nil, err
	}

	ip := net.ParseIP(host)
	if ip == nil {
		return nil, fmt.Errorf("%w: %s", errHostNotIP, host)
	}

	port, err := parsePort(portString)
	if err != nil {
		return nil, err
	}

	if port == 0 {
		return nil, fmt.Errorf("%w: %d", errPortOutOfRange, port)
	}

	return &net.TCPAddr{IP: ip, Port: port}, nil
}
