package config

import "github.com/urfave/cli/v3"

// Server holds server configuration
type Server struct {
	Addr string
	Open bool
}

// Flags returns CLI flags for server configuration
func (c *Server) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Server address (use port 0 for an ephemeral port)",
			Value:       "127.0.0.1:8080",
			Destination: &c.Addr,
			Sources:     cli.EnvVars("PPTX_PARSER_ADDR"),
		},
		&cli.BoolFlag{
			Name:        "open",
			Usage:       "Open the default browser once the server is listening",
			Value:       false,
			Destination: &c.Open,
			Sources:     cli.EnvVars("PPTX_PARSER_OPEN"),
		},
	}
}
