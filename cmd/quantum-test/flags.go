package main

import (
	"github.com/Electron-Labs/quantum-test/circuits"
	"github.com/Electron-Labs/quantum-test/quantum"
	"github.com/urfave/cli/v2"
)

const envVarPrefix = "QUANTUM"

func PrefixEnvVar(suffix string) []string {
	return []string{envVarPrefix + "_" + suffix}
}

var (
	RpcEndpointFlag = &cli.StringFlag{
		Name:    "rpc-endpoint",
		Usage:   "Quantum RPC endpoint",
		EnvVars: []string{"RPC_ENDPOINT"},
	}
	AccessKeyFlag = &cli.StringFlag{
		Name:    "access-key",
		Usage:   "Quantum access key",
		EnvVars: []string{"ACCESS_KEY"},
	}
	TimeoutFlag = &cli.DurationFlag{
		Name:    "rpc-timeout",
		Usage:   "Timeout for each call to the Quantum RPC endpoint",
		EnvVars: PrefixEnvVar("RPC_TIMEOUT"),
		Value:   quantum.DefaultTimeout,
	}
	SchemeFlag = &cli.StringFlag{
		Name:    "scheme",
		Usage:   "Proof scheme to register and submit",
		EnvVars: PrefixEnvVar("SCHEME"),
	}
	CircuitPathFlag = &cli.StringFlag{
		Name:    "circuit-path",
		Usage:   "Directory holding <scheme>/circuit_data",
		EnvVars: PrefixEnvVar("CIRCUIT_PATH"),
		Value:   circuits.DefaultRoot,
	}
	WorkdirFlag = &cli.StringFlag{
		Name:    "workdir",
		Usage:   "Base directory for local artifact storage",
		EnvVars: PrefixEnvVar("WORKDIR"),
		Value:   ".",
	}
	S3BucketFlag = &cli.StringFlag{
		Name:    "s3-bucket",
		Usage:   "Read and write artifacts from this S3 bucket instead of the local disk",
		EnvVars: PrefixEnvVar("S3_BUCKET"),
	}
	S3RegionFlag = &cli.StringFlag{
		Name:    "s3-region",
		Usage:   "Region of the S3 bucket",
		EnvVars: PrefixEnvVar("S3_REGION"),
		Value:   "us-east-1",
	}
	S3PrefixFlag = &cli.StringFlag{
		Name:    "s3-prefix",
		Usage:   "Key prefix inside the S3 bucket",
		EnvVars: PrefixEnvVar("S3_PREFIX"),
	}
	PreflightFlag = &cli.BoolFlag{
		Name:    "preflight",
		Usage:   "Check artifacts locally before registering the circuit",
		EnvVars: PrefixEnvVar("PREFLIGHT"),
	}
	StrictFlag = &cli.BoolFlag{
		Name:    "strict",
		Usage:   "Exit non-zero when registration or submission fails",
		EnvVars: PrefixEnvVar("STRICT"),
	}
	DebugFlag = &cli.BoolFlag{
		Name:    "debug",
		Usage:   "Enable debug logging",
		EnvVars: PrefixEnvVar("DEBUG"),
	}
	PortFlag = &cli.IntFlag{
		Name:    "port",
		Usage:   "Port to run the loopback RPC service on",
		EnvVars: PrefixEnvVar("PORT"),
		Value:   8555,
	}
	WitnessFlag = &cli.Int64Flag{
		Name:  "x",
		Usage: "Private input of the x**3 + x + 5 == y circuit",
		Value: 3,
	}
)

var storageFlags = []cli.Flag{
	WorkdirFlag,
	S3BucketFlag,
	S3RegionFlag,
	S3PrefixFlag,
	CircuitPathFlag,
}

var rpcFlags = []cli.Flag{
	RpcEndpointFlag,
	AccessKeyFlag,
	TimeoutFlag,
}

var Flags = append(append([]cli.Flag{
	SchemeFlag,
	PreflightFlag,
	StrictFlag,
	DebugFlag,
}, rpcFlags...), storageFlags...)

// lookup returns the nearest context in the lineage where name was set, so a
// flag given before a subcommand is not hidden by the subcommand's own copy.
func lookup(cliCtx *cli.Context, name string) *cli.Context {
	for _, c := range cliCtx.Lineage() {
		if c.Command == nil {
			continue
		}
		for _, n := range c.LocalFlagNames() {
			if n == name {
				return c
			}
		}
	}
	return cliCtx
}

func stringFlag(cliCtx *cli.Context, flag *cli.StringFlag) string {
	return lookup(cliCtx, flag.Name).String(flag.Name)
}
