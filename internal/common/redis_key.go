package common

const RedisKeyTrendingQuests = "trending:quests"
