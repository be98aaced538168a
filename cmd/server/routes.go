package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/saiisback/capy/internal/interfaces/http/handlers"
)

type routeDeps struct {
	walletHandler      *handlers.WalletHandler
	stateHandler       *handlers.StateHandler
	invitationHandler  *handlers.InvitationHandler
	petHandler         *handlers.PetHandler
	marketplaceHandler *handlers.MarketplaceHandler
	inventoryHandler   *handlers.InventoryHandler
	arcadeHandler      *handlers.ArcadeHandler
	sessionMiddleware  gin.HandlerFunc
	optionalSession    gin.HandlerFunc
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Wallet routes
		wallet := v1.Group("/wallet")
		{
			wallet.POST("/connect", d.walletHandler.Connect)
			wallet.POST("/disconnect", d.sessionMiddleware, d.walletHandler.Disconnect)
			wallet.GET("/state", d.optionalSession, d.walletHandler.State)
		}

		// Screen resolution (works with or without a session)
		v1.GET("/state", d.optionalSession, d.stateHandler.Resolve)

		// Invitation routes (protected)
		invitations := v1.Group("/invitations")
		invitations.Use(d.sessionMiddleware)
		{
			invitations.POST("", d.invitationHandler.Send)
			invitations.GET("/pending", d.invitationHandler.Pending)
			invitations.POST("/:id/accept", d.invitationHandler.Accept)
		}

		// Pet routes (protected)
		v1.GET("/coparent", d.sessionMiddleware, d.petHandler.CoParent)
		pet := v1.Group("/pet")
		pet.Use(d.sessionMiddleware)
		{
			pet.POST("/feed", d.petHandler.Feed)
			pet.POST("/love", d.petHandler.ShowLove)
		}

		// Marketplace routes (catalog is public, purchase is protected)
		marketplace := v1.Group("/marketplace")
		{
			marketplace.GET("/items", d.marketplaceHandler.Catalog)
			marketplace.GET("/items/:id", d.marketplaceHandler.Item)
			marketplace.POST("/items/:id/purchase", d.sessionMiddleware, d.marketplaceHandler.Purchase)
		}

		// Inventory and NFT routes
		v1.GET("/inventory", d.sessionMiddleware, d.inventoryHandler.Items)
		nfts := v1.Group("/nfts")
		{
			nfts.GET("", d.sessionMiddleware, d.inventoryHandler.PetNFTs)
			nfts.POST("/claim", d.sessionMiddleware, d.inventoryHandler.ClaimPetNFT)
			nfts.GET("/collection", d.inventoryHandler.Collection)
		}

		// Arcade routes (protected; rounds are session-scoped)
		arcade := v1.Group("/arcade")
		arcade.Use(d.sessionMiddleware)
		{
			arcade.POST("/:kind/start", d.arcadeHandler.Start)
			arcade.GET("/games/:id", d.arcadeHandler.Game)
			arcade.POST("/games/:id/hit", d.arcadeHandler.Hit)
			arcade.POST("/games/:id/move", d.arcadeHandler.Move)
			arcade.POST("/games/:id/finish", d.arcadeHandler.Finish)
			arcade.POST("/games/:id/claim", d.arcadeHandler.Claim)
		}
	}
}

func applyCORSMiddleware(r *gin.Engine) {
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization, X-Request-ID")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"time":   time.Now().UTC().Format(time.RFC3339),
		})
	})
}
