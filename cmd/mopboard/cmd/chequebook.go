package cmd

import (
	"context"
	"errors"
	"time"

	"github.com/redesblock/mopboard/core/forms"
	"github.com/spf13/cobra"
)

const transferTimeout = time.Minute

func (c *command) initDepositCmd() error {
	cmd := &cobra.Command{
		Use:   "deposit amount",
		Short: "Deposit tokens from the node wallet into the chequebook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			f := forms.FundsForm{}.WithAmount(args[0])
			if f.AmountError != "" {
				return errors.New(f.AmountError)
			}

			client, err := c.newNodeClient()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), transferTimeout)
			defer cancel()

			txHash, err := f.Deposit(ctx, client, nil)
			if err != nil {
				return err
			}

			cmd.Println("transaction:", txHash)
			return nil
		},
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return c.config.BindPFlags(cmd.Flags())
		},
	}

	c.setAllFlags(cmd)
	c.root.AddCommand(cmd)

	return nil
}

func (c *command) initWithdrawCmd() error {
	cmd := &cobra.Command{
		Use:   "withdraw amount",
		Short: "Withdraw tokens from the chequebook into the node wallet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			f := forms.FundsForm{}.WithAmount(args[0])
			if f.AmountError != "" {
				return errors.New(f.AmountError)
			}

			client, err := c.newNodeClient()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), transferTimeout)
			defer cancel()

			txHash, err := f.Withdraw(ctx, client, nil)
			if err != nil {
				return err
			}

			cmd.Println("transaction:", txHash)
			return nil
		},
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return c.config.BindPFlags(cmd.Flags())
		},
	}

	c.setAllFlags(cmd)
	c.root.AddCommand(cmd)

	return nil
}
