// Package nanmanager is a client for the NewNanManager management API, which
// administers players, servers, towns, IP addresses and API tokens for a
// game server fleet.
//
// # Usage
//
//	client, err := nanmanager.New("https://manager-api.example.com", token,
//	    nanmanager.WithTimeout(10*time.Second),
//	    nanmanager.WithRetry(3, time.Second),
//	)
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//
//	players, err := client.Players.List(ctx, &services.ListPlayersOptions{
//	    PageOptions: services.NewPageOptions(1, 20),
//	})
//
// For a client that only lives for one unit of work, With closes it on
// every exit path:
//
//	err := nanmanager.With(cfg, func(c *nanmanager.Client) error {
//	    _, err := c.Players.Get(ctx, 42)
//	    return err
//	})
//
// Failures are typed; see package transport for how to tell them apart.
package nanmanager
