package rdx

import (
	"log"
	"os"

	"github.com/redis/go-redis/v9"

	"salone/globals"
)

// Conn stays nil when REDIS_URL is not configured; every helper below degrades
// to a no-op so the tools keep working without the cache tier.
var Conn *redis.Client

func Init() {
	addr := os.Getenv("REDIS_URL")
	if addr == "" {
		return
	}
	Conn = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})
}

// InvalidateServices drops the cached active-services list the booking
// frontend reads, so a fresh seed shows up without waiting for TTL.
func InvalidateServices() {
	if Conn == nil {
		return
	}
	if err := Conn.Del(globals.Ctx, "services:active").Err(); err != nil {
		log.Println("redis del services:active:", err)
	}
}

// InvalidateAdmin drops a cached admin profile entry after a promotion or
// reactivation so stale permissions don't linger.
func InvalidateAdmin(handle string) {
	if Conn == nil {
		return
	}
	if err := Conn.Del(globals.Ctx, "admin:"+handle).Err(); err != nil {
		log.Println("redis del admin:"+handle+":", err)
	}
}
