package connection

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
)

func ConnectRedisWithRetry(addr string, maxRetries int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	for i := 1; i <= maxRetries; i++ {
		ctx := context.Background()
		if err := rdb.Ping(ctx).Err(); err == nil {
			log.Println("✅ Connected to Redis")
			return rdb, nil
		}

		log.Printf("⚠️ Redis retry %d/%d failed", i, maxRetries)
		time.Sleep(5 * time.Second)
	}

	return nil, fmt.Errorf("failed to connect redis")
}

// ConnectKafkaWithRetry mengembalikan writer tanpa topic tetap; topic
// ditentukan per message oleh publisher.
func ConnectKafkaWithRetry(brokers []string, maxRetries int) (*kafka.Writer, error) {
	if len(brokers) == 0 {
		return nil, fmt.Errorf("kafka brokers are required")
	}

	for i := 1; i <= maxRetries; i++ {
		conn, err := kafka.Dial("tcp", brokers[0])
		if err == nil {
			conn.Close()
			log.Println("✅ Connected to Kafka")
			return &kafka.Writer{
				Addr:         kafka.TCP(brokers...),
				Balancer:     &kafka.LeastBytes{},
				RequiredAcks: kafka.RequireAll,
			}, nil
		}

		log.Printf("⚠️ Kafka retry %d/%d failed: %v", i, maxRetries, err)
		time.Sleep(5 * time.Second)
	}

	return nil, fmt.Errorf("failed to connect kafka")
}
