package broker

import (
	"bufio"
	"encoding/json"
	"fmt"
	"net"
)

// Client talks to a running broker.
type Client struct {
	conn net.Conn
	r    *bufio.Reader
}

// Dial connects to the broker socket.
func Dial(socketPath string) (*Client, error) {
	conn, err := net.Dial("unix", socketPath)
	if err != nil {
		return nil, fmt.Errorf("cannot reach broker at %s: %w", socketPath, err)
	}
	return &Client{conn: conn, r: bufio.NewReader(conn)}, nil
}

// Do sends one request and waits for its response. An ok=false response is
// returned as an error.
func (c *Client) Do(req Request) (Response, error) {
	data, err := json.Marshal(req)
	if err != nil {
		return Response{}, err
	}
	if _, err := c.conn.Write(append(data, '\n')); err != nil {
		return Response{}, fmt.Errorf("broker write failed: %w", err)
	}

	line, err := c.r.ReadBytes('\n')
	if err != nil {
		return Response{}, fmt.Errorf("broker read failed: %w", err)
	}

	var resp Response
	if err := json.Unmarshal(line, &resp); err != nil {
		return Response{}, fmt.Errorf("malformed broker response: %w", err)
	}
	if !resp.OK {
		return resp, fmt.Errorf("broker: %s", resp.Error)
	}
	return resp, nil
}

// Close closes the connection.
func (c *Client) Close() error {
	return c.conn.Close()
}
