package mem

import (
	"sync"

	"matchday/internal/domain"
	"matchday/internal/normalize"
)

// Cache keeps players addressable by normalized name.
type Cache struct {
	mu      sync.RWMutex
	players map[string]domain.Player
}

func New() *Cache {
	return &Cache{
		players: make(map[string]domain.Player),
	}
}

func (c *Cache) Update(players []domain.Player) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.players = make(map[string]domain.Player)
	for i := range players {
		name := normalize.Name(players[i].Name)
		c.players[name] = players[i]
	}
}

func (c *Cache) Add(player domain.Player) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.players[normalize.Name(player.Name)] = player
}

func (c *Cache) GetPlayerByName(name string) (domain.Player, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	player, ok := c.players[normalize.Name(name)]
	if !ok {
		return domain.Player{}, false
	}
	return player, true
}
