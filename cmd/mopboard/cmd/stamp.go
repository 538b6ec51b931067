package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redesblock/mopboard/core/forms"
	"github.com/redesblock/mopboard/core/postage"
	"github.com/spf13/cobra"
)

const (
	optionNameLabel      = "label"
	optionNameImmutable  = "immutable"
	optionNameWaitUsable = "wait-usable"

	buyStampTimeout = 5 * time.Minute
)

func (c *command) initBuyStampCmd() error {
	cmd := &cobra.Command{
		Use:   "buy-stamp amount depth",
		Short: "Buy a new postage batch",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			f := forms.StampForm{}.
				WithAmount(args[0]).
				WithDepth(args[1]).
				WithLabel(c.config.GetString(optionNameLabel)).
				WithImmutable(c.config.GetBool(optionNameImmutable)).
				WithWaitUsable(c.config.GetBool(optionNameWaitUsable))
			if f.AmountError != "" {
				return errors.New(f.AmountError)
			}
			if f.DepthError != "" {
				return errors.New(f.DepthError)
			}

			client, err := c.newNodeClient()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), buyStampTimeout)
			defer cancel()

			cmd.Println("capacity:", f.FileSize())
			cmd.Println("price:", f.IndicativePrice())
			if cs, err := client.ChainState(ctx); err == nil {
				cmd.Println("expected lifetime:", f.TTL(cs))
			}

			batchID, err := f.Submit(ctx, client, nil, func() {
				cmd.Println("batch confirmed")
			})
			if err != nil {
				return err
			}

			cmd.Println("batchID:", batchID)
			return nil
		},
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return c.config.BindPFlags(cmd.Flags())
		},
	}

	cmd.Flags().String(optionNameLabel, "", "label for the batch")
	cmd.Flags().Bool(optionNameImmutable, false, "create an immutable batch")
	cmd.Flags().Bool(optionNameWaitUsable, false, "wait until the node reports the batch usable")
	c.setAllFlags(cmd)

	c.root.AddCommand(cmd)

	return nil
}

func (c *command) initListStampsCmd() error {
	cmd := &cobra.Command{
		Use:   "list-stamps",
		Short: "Get all available stamps for this node",
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			client, err := c.newNodeClient()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
			defer cancel()

			stamps, err := client.Stamps(ctx)
			if err != nil {
				return err
			}

			for _, s := range stamps {
				printStamp(cmd, s)
			}
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

func (c *command) initShowStampCmd() error {
	cmd := &cobra.Command{
		Use:   "show-stamp id",
		Short: "Get an individual postage batch status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			client, err := c.newNodeClient()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
			defer cancel()

			stamp, err := client.Stamp(ctx, args[0])
			if err != nil {
				return err
			}

			printStamp(cmd, stamp)
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

func printStamp(cmd *cobra.Command, s *postage.Batch) {
	usable := "not usable"
	if s.Usable {
		usable = "usable"
	}
	cmd.Println(fmt.Sprintf("%s depth=%d amount=%s label=%q %s", s.BatchID, s.Depth, s.Amount, s.Label, usable))
}
