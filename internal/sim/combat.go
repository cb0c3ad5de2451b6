package sim

import "fmt"

const playerSwingDamage = 1.0

// resolvePlayerSwing applies the player's swing to every live enemy within
// reach of the attack point. Runs only on the tick the swing starts.
func (g *Game) resolvePlayerSwing(env *Env) {
	if !g.Player.Attacking {
		return
	}
	g.Stats.SwingsThrown++
	g.audio.PlayAttack()

	ax, ay := g.Player.AttackPosition()
	for _, e := range g.Enemies {
		if e.Dead {
			continue
		}
		if Distance(ax, ay, e.X, e.Y) > g.Player.AttackRange {
			continue
		}
		e.TakeDamage(playerSwingDamage, env)
		g.Log.Add(g.Tick, "P", "enemy", "struck",
			fmt.Sprintf("%s health %.1f", enemyLabel(e), e.Health), e.Health)
	}
}
