package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/btcsuite/btclog"
	"github.com/feistelcipher/feistel"
	"github.com/urfave/cli"
)

const (
	defaultKey    = "rust"
	defaultRounds = 10

	// demoMessage is the sample string the bare command encrypts and
	// decrypts back.
	demoMessage = "budapesh"
)

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "[feistel] %v\n", err)
	os.Exit(1)
}

func main() {
	app := cli.NewApp()
	app.Name = "feistel"
	app.Version = "0.1.0"
	app.Usage = "toy Feistel network block cipher"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "key",
			Value: defaultKey,
			Usage: "cipher key, must be half the block length " +
				"for the result to round-trip",
		},
		cli.UintFlag{
			Name:  "rounds",
			Value: defaultRounds,
			Usage: "number of Feistel rounds",
		},
		cli.BoolFlag{
			Name:  "debug",
			Usage: "log cipher internals to stderr",
		},
	}
	app.Before = func(ctx *cli.Context) error {
		if ctx.GlobalBool("debug") {
			logger := btclog.NewBackend(os.Stderr).Logger("FSTL")
			logger.SetLevel(btclog.LevelTrace)
			feistel.UseLogger(logger)
		}
		return nil
	}
	app.Commands = []cli.Command{
		encryptCommand,
		decryptCommand,
	}
	app.Action = demo

	if err := app.Run(os.Args); err != nil {
		fatal(err)
	}
}

// padBlock appends a single zero byte when the message does not split into
// two equal halves, since the cipher only accepts even-length blocks.
func padBlock(block []byte) []byte {
	if len(block)%2 != 0 {
		return append(block, 0x00)
	}
	return block
}

// demo encodes the sample message, encrypts it, decrypts the ciphertext
// back, and prints all three.
func demo(ctx *cli.Context) error {
	var (
		key       = []byte(ctx.GlobalString("key"))
		numRounds = uint8(ctx.GlobalUint("rounds"))
	)

	block := padBlock([]byte(demoMessage))

	cipherText, err := feistel.EncryptBlock(block, key, numRounds)
	if err != nil {
		return err
	}

	plainText, err := feistel.DecryptBlock(cipherText, key, numRounds)
	if err != nil {
		return err
	}

	fmt.Printf("message:    %q\n", block)
	fmt.Printf("ciphertext: %x\n", cipherText)
	fmt.Printf("decrypted:  %q\n", plainText)

	return nil
}

var encryptCommand = cli.Command{
	Name:      "encrypt",
	Usage:     "encrypt a message and print the ciphertext as hex",
	ArgsUsage: "message",
	Action:    encrypt,
}

func encrypt(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return cli.ShowCommandHelp(ctx, "encrypt")
	}

	block := padBlock([]byte(ctx.Args().First()))

	cipherText, err := feistel.EncryptBlock(
		block, []byte(ctx.GlobalString("key")),
		uint8(ctx.GlobalUint("rounds")),
	)
	if err != nil {
		return err
	}

	fmt.Printf("%x\n", cipherText)

	return nil
}

var decryptCommand = cli.Command{
	Name:      "decrypt",
	Usage:     "decrypt a hex encoded ciphertext",
	ArgsUsage: "ciphertext_hex",
	Action:    decrypt,
}

func decrypt(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return cli.ShowCommandHelp(ctx, "decrypt")
	}

	cipherText, err := hex.DecodeString(ctx.Args().First())
	if err != nil {
		return fmt.Errorf("invalid ciphertext: %w", err)
	}

	plainText, err := feistel.DecryptBlock(
		cipherText, []byte(ctx.GlobalString("key")),
		uint8(ctx.GlobalUint("rounds")),
	)
	if err != nil {
		return err
	}

	fmt.Printf("%s\n", plainText)

	return nil
}
