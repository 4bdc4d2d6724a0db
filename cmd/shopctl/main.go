package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"

	cartgrpc "github.com/dwikikusuma/shopfront/internal/cart/grpc"
	cgrpc "github.com/dwikikusuma/shopfront/internal/catalog/grpc"
	checkoutgrpc "github.com/dwikikusuma/shopfront/internal/checkout/grpc"
	"github.com/dwikikusuma/shopfront/internal/messaging"
	"github.com/dwikikusuma/shopfront/internal/messaging/kafka"
	ogrpc "github.com/dwikikusuma/shopfront/internal/order/grpc"
	"github.com/dwikikusuma/shopfront/pkg/logger"
	"github.com/dwikikusuma/shopfront/pkg/shutdown"
	"github.com/urfave/cli/v2"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

func main() {
	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	if err := newApp(os.Stdout, dialInsecure).RunContext(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

type clients struct {
	catalog  *cgrpc.Client
	cart     *cartgrpc.Client
	checkout *checkoutgrpc.Client
	orders   *ogrpc.Client
}

type dialer func(addr string) (*grpc.ClientConn, error)

func dialInsecure(addr string) (*grpc.ClientConn, error) {
	return grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
}

func newApp(out io.Writer, dial dialer) *cli.App {
	var (
		conn *grpc.ClientConn
		cl   clients
	)

	requireUser := func(c *cli.Context) (string, error) {
		u := c.String("user")
		if u == "" {
			return "", errors.New("--user is required")
		}
		return u, nil
	}

	return &cli.App{
		Name:   "shopctl",
		Usage:  "talk to the shop gRPC API",
		Writer: out,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "addr", Value: "localhost:8081", EnvVars: []string{"SHOP_GRPC_ADDR"}, Usage: "gRPC server address"},
			&cli.StringFlag{Name: "user", Aliases: []string{"u"}, EnvVars: []string{"SHOP_USER"}, Usage: "user id to act as"},
		},
		Before: func(c *cli.Context) error {
			if c.Args().First() == "events" {
				return nil
			}
			var err error
			conn, err = dial(c.String("addr"))
			if err != nil {
				return fmt.Errorf("dial %s: %w", c.String("addr"), err)
			}
			cl = clients{
				catalog:  cgrpc.NewClient(conn),
				cart:     cartgrpc.NewClient(conn),
				checkout: checkoutgrpc.NewClient(conn),
				orders:   ogrpc.NewClient(conn),
			}
			return nil
		},
		After: func(*cli.Context) error {
			if conn != nil {
				return conn.Close()
			}
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:  "products",
				Usage: "list products",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "category"},
					&cli.StringFlag{Name: "search"},
					&cli.StringFlag{Name: "min-price"},
					&cli.StringFlag{Name: "max-price"},
				},
				Action: func(c *cli.Context) error {
					resp, err := cl.catalog.ListProducts(c.Context, &cgrpc.ListProductsRequest{
						Category: c.String("category"),
						Search:   c.String("search"),
						MinPrice: c.String("min-price"),
						MaxPrice: c.String("max-price"),
					})
					if err != nil {
						return err
					}
					return printProducts(out, resp.Products)
				},
			},
			{
				Name:  "categories",
				Usage: "list categories",
				Action: func(c *cli.Context) error {
					resp, err := cl.catalog.ListCategories(c.Context)
					if err != nil {
						return err
					}
					for _, cat := range resp.Categories {
						fmt.Fprintln(out, cat)
					}
					return nil
				},
			},
			{
				Name:  "cart",
				Usage: "inspect and change the cart",
				Subcommands: []*cli.Command{
					{
						Name: "show",
						Action: func(c *cli.Context) error {
							u, err := requireUser(c)
							if err != nil {
								return err
							}
							resp, err := cl.cart.GetCart(c.Context, u)
							if err != nil {
								return err
							}
							return printJSON(out, resp)
						},
					},
					{
						Name:      "add",
						ArgsUsage: "<product-id>",
						Flags:     []cli.Flag{&cli.IntFlag{Name: "qty", Value: 1}},
						Action: func(c *cli.Context) error {
							u, err := requireUser(c)
							if err != nil {
								return err
							}
							resp, err := cl.cart.AddItem(c.Context, &cartgrpc.AddItemRequest{
								UserId:    u,
								ProductId: c.Args().First(),
								Quantity:  int32(c.Int("qty")),
							})
							if err != nil {
								return err
							}
							return printJSON(out, resp.Item)
						},
					},
					{
						Name:      "update",
						ArgsUsage: "<item-id>",
						Flags:     []cli.Flag{&cli.IntFlag{Name: "qty", Required: true}},
						Action: func(c *cli.Context) error {
							u, err := requireUser(c)
							if err != nil {
								return err
							}
							resp, err := cl.cart.UpdateQuantity(c.Context, &cartgrpc.UpdateQuantityRequest{
								UserId:   u,
								ItemId:   c.Args().First(),
								Quantity: int32(c.Int("qty")),
							})
							if err != nil {
								return err
							}
							return printJSON(out, resp)
						},
					},
					{
						Name:      "remove",
						ArgsUsage: "<item-id>",
						Action: func(c *cli.Context) error {
							u, err := requireUser(c)
							if err != nil {
								return err
							}
							resp, err := cl.cart.RemoveItem(c.Context, &cartgrpc.RemoveItemRequest{UserId: u, ItemId: c.Args().First()})
							if err != nil {
								return err
							}
							return printJSON(out, resp)
						},
					},
					{
						Name: "clear",
						Action: func(c *cli.Context) error {
							u, err := requireUser(c)
							if err != nil {
								return err
							}
							return cl.cart.ClearCart(c.Context, u)
						},
					},
				},
			},
			{
				Name:  "quote",
				Usage: "price the cart without placing an order",
				Action: func(c *cli.Context) error {
					u, err := requireUser(c)
					if err != nil {
						return err
					}
					resp, err := cl.checkout.Quote(c.Context, u)
					if err != nil {
						return err
					}
					return printJSON(out, resp)
				},
			},
			{
				Name:  "checkout",
				Usage: "place an order from the cart",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "address"},
					&cli.StringFlag{Name: "payment"},
				},
				Action: func(c *cli.Context) error {
					u, err := requireUser(c)
					if err != nil {
						return err
					}
					resp, err := cl.checkout.PlaceOrder(c.Context, &checkoutgrpc.PlaceOrderRequest{
						UserId:          u,
						ShippingAddress: c.String("address"),
						PaymentMethod:   c.String("payment"),
					})
					if err != nil {
						return err
					}
					return printJSON(out, resp.Order)
				},
			},
			{
				Name:  "orders",
				Usage: "order history",
				Subcommands: []*cli.Command{
					{
						Name: "list",
						Action: func(c *cli.Context) error {
							u, err := requireUser(c)
							if err != nil {
								return err
							}
							resp, err := cl.orders.ListOrders(c.Context, u)
							if err != nil {
								return err
							}
							return printJSON(out, resp.Orders)
						},
					},
					{
						Name:      "get",
						ArgsUsage: "<order-id>",
						Action: func(c *cli.Context) error {
							u, err := requireUser(c)
							if err != nil {
								return err
							}
							resp, err := cl.orders.GetOrder(c.Context, u, c.Args().First())
							if err != nil {
								return err
							}
							return printJSON(out, resp.Order)
						},
					},
				},
			},
			{
				Name:  "events",
				Usage: "order events on kafka",
				Subcommands: []*cli.Command{
					{
						Name:  "tail",
						Usage: "print order-placed events until interrupted",
						Flags: []cli.Flag{
							&cli.StringSliceFlag{Name: "brokers", Value: cli.NewStringSlice("localhost:9092"), EnvVars: []string{"KAFKA_BROKERS"}},
							&cli.StringFlag{Name: "topic", Value: "orders.placed", EnvVars: []string{"ORDERS_TOPIC"}},
							&cli.StringFlag{Name: "group", Value: "shopctl"},
						},
						Action: func(c *cli.Context) error {
							log := logger.New(logger.Options{Service: "shopctl", Level: "info", Format: "text", Output: os.Stderr})
							broker := kafka.NewKafkaBroker(c.StringSlice("brokers"))
							defer broker.Close()

							log.Info("tailing order events", slog.String("topic", c.String("topic")))
							broker.Consume(c.Context, c.String("topic"), c.String("group"), func(_ context.Context, payload []byte) error {
								var ev messaging.OrderPlaced
								if err := json.Unmarshal(payload, &ev); err != nil {
									return fmt.Errorf("decode event: %w", err)
								}
								return printJSON(out, ev)
							})
							return nil
						},
					},
				},
			},
		},
	}
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printProducts(w io.Writer, products []*cgrpc.Product) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tPRICE\tSTOCK\tCATEGORY")
	for _, p := range products {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n", p.Id, p.Name, p.Price, p.Stock, p.Category)
	}
	return tw.Flush()
}
