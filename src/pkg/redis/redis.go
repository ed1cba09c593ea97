package redis

import (
	"context"
	"crypto/tls"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// The client backs login sessions and the online-presence set, so a
// failed connection at boot is fatal.
var redisClient redis.UniversalClient

func tlsConfig(enabled bool) *tls.Config {
	if !enabled {
		return nil
	}
	return &tls.Config{MinVersion: tls.VersionTLS12}
}

func InitConnection() {
	if AppConfigData.UseCluster {
		redisClient = redis.NewClusterClient(&redis.ClusterOptions{
			Addrs:        RedisClusterConfigData.Hosts,
			Username:     RedisClusterConfigData.Username,
			Password:     RedisClusterConfigData.Password,
			TLSConfig:    tlsConfig(RedisClusterConfigData.EnableTLS),
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		})
	} else {
		redisClient = redis.NewClient(&redis.Options{
			Addr:         fmt.Sprintf("%s:%v", RedisConfigData.Host, RedisConfigData.Port),
			Password:     RedisConfigData.Password,
			DB:           RedisConfigData.DB,
			TLSConfig:    tlsConfig(RedisConfigData.EnableTLS),
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
			PoolSize:     10,
			MaxRetries:   2,
		})
	}

	if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
		fmt.Println("REDIS ERROR:", err.Error())
		panic("cannot connect to Redis")
	}
}

func GetClient() redis.UniversalClient {
	return redisClient
}
