// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package transport

// Config is a fluent builder for Init's parameters, for callers that
// prefer named configuration over three positional integers.
//
// Example:
//
//	tr, err := transport.NewConfig(4096).TXCount(64).RXCount(256).Build()
type Config struct {
	bufSize int
	txCount int
	rxCount int
}

// NewConfig creates a Config for buffers of bufSize bytes, with
// symmetric TX/RX counts of 16 until overridden.
func NewConfig(bufSize int) *Config {
	return &Config{bufSize: bufSize, txCount: 16, rxCount: 16}
}

// TXCount sets the number of buffers in the outbound pool.
func (c *Config) TXCount(n int) *Config {
	c.txCount = n
	return c
}

// RXCount sets the number of buffers in the inbound pool.
func (c *Config) RXCount(n int) *Config {
	c.rxCount = n
	return c
}

// Build creates the Transport described by c.
func (c *Config) Build() (*Transport, error) {
	return Init(c.txCount, c.rxCount, c.bufSize)
}
