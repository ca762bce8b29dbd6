package dedupe_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/MichalMitros/frame-order-parser/internal/dedupe"
	"github.com/go-faker/faker/v4"
	"github.com/gomodule/redigo/redis"
	"github.com/stretchr/testify/suite"
)

func TestRedisIntegration(t *testing.T) {
	suite.Run(t, new(RedisTestSuite))
}

type RedisTestSuite struct {
	suite.Suite
	pool *redis.Pool
}

func (s *RedisTestSuite) SetupSuite() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		s.T().Fatal("please provide redis address via REDIS_ADDR environment variable")
	}
	s.pool = dedupe.NewPool(addr)
}

func (s *RedisTestSuite) TearDownSuite() {
	if err := s.pool.Close(); err != nil {
		s.FailNow("close redis pool", err)
	}
}

func (s *RedisTestSuite) TestIntegrationClaim() {
	dd := dedupe.NewRedis(s.pool, time.Minute)
	messageID := faker.UUIDHyphenated()

	claimed, err := dd.Claim(context.TODO(), messageID)
	s.Require().NoError(err)
	s.True(claimed, "first claim should succeed")

	claimed, err = dd.Claim(context.TODO(), messageID)
	s.Require().NoError(err)
	s.False(claimed, "redelivered message should not be claimed twice")

	s.Require().NoError(dd.Release(context.TODO(), messageID))

	claimed, err = dd.Claim(context.TODO(), messageID)
	s.Require().NoError(err)
	s.True(claimed, "released message should be claimed again")
}

func (s *RedisTestSuite) TestIntegrationClaimExpires() {
	dd := dedupe.NewRedis(s.pool, time.Second)
	messageID := faker.UUIDHyphenated()

	claimed, err := dd.Claim(context.TODO(), messageID)
	s.Require().NoError(err)
	s.Require().True(claimed)

	s.Eventually(func() bool {
		claimed, err := dd.Claim(context.TODO(), messageID)
		return err == nil && claimed
	}, 5*time.Second, 250*time.Millisecond, "claim should expire after ttl")
}
