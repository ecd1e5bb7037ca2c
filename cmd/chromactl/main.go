// Command chromactl is a small command-line client for the chromad HTTP API.
//
// Usage:
//
//	chromactl [-addr host:port] <command> [args]
//
// Commands:
//
//	status                      daemon info summary
//	monitors                    list detected monitors
//	profiles                    list installed ICC profiles
//	set-profile <monitor> <p>   assign a profile to a monitor
//	enable-hdr <monitor>        switch a monitor to HDR output
//	disable-hdr <monitor>       switch a monitor back to SDR
//	ocio [path]                 show or set the active OCIO config
//	refresh                     re-detect monitors and rescan profiles
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

func main() {
	addr := flag.String("addr", "localhost:8095", "chromad address")
	flag.Usage = usage
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}

	c := &client{base: "http://" + *addr, hc: &http.Client{Timeout: 10 * time.Second}}

	var err error
	switch cmd := args[0]; cmd {
	case "status":
		err = c.get("/api/info")
	case "monitors":
		err = c.get("/api/monitors")
	case "profiles":
		err = c.get("/api/profiles")
	case "set-profile":
		if len(args) != 3 {
			err = fmt.Errorf("usage: chromactl set-profile <monitor> <profile-path>")
			break
		}
		err = c.send(http.MethodPut, "/api/monitors/"+args[1]+"/profile",
			map[string]string{"profile": args[2]})
	case "enable-hdr":
		if len(args) != 2 {
			err = fmt.Errorf("usage: chromactl enable-hdr <monitor>")
			break
		}
		err = c.send(http.MethodPost, "/api/monitors/"+args[1]+"/hdr", nil)
	case "disable-hdr":
		if len(args) != 2 {
			err = fmt.Errorf("usage: chromactl disable-hdr <monitor>")
			break
		}
		err = c.send(http.MethodDelete, "/api/monitors/"+args[1]+"/hdr", nil)
	case "ocio":
		if len(args) == 2 {
			err = c.send(http.MethodPut, "/api/ocio", map[string]string{"path": args[1]})
		} else {
			err = c.get("/api/ocio")
		}
	case "refresh":
		err = c.send(http.MethodPost, "/api/refresh", nil)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", cmd)
		usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: chromactl [-addr host:port] <command> [args]

commands:
  status                      daemon info summary
  monitors                    list detected monitors
  profiles                    list installed ICC profiles
  set-profile <monitor> <p>   assign a profile to a monitor
  enable-hdr <monitor>        switch a monitor to HDR output
  disable-hdr <monitor>       switch a monitor back to SDR
  ocio [path]                 show or set the active OCIO config
  refresh                     re-detect monitors and rescan profiles`)
}

type client struct {
	base string
	hc   *http.Client
}

func (c *client) get(path string) error {
	resp, err := c.hc.Get(c.base + path)
	if err != nil {
		return err
	}
	return print(resp)
}

func (c *client) send(method, path string, body interface{}) error {
	var rd io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rd = bytes.NewReader(data)
	}
	req, err := http.NewRequest(method, c.base+path, rd)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.hc.Do(req)
	if err != nil {
		return err
	}
	return print(resp)
}

// print re-indents the JSON response for the terminal.
func print(resp *http.Response) error {
	defer resp.Body.Close()
	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if json.Indent(&buf, data, "", "  ") == nil {
		data = buf.Bytes()
	}
	fmt.Println(string(bytes.TrimSpace(data)))

	if resp.StatusCode >= 400 {
		return fmt.Errorf("%s", resp.Status)
	}
	return nil
}
